package app

import "testing"

func TestToggleFlipsMembership(t *testing.T) {
	s := NewUIState()

	s.ToggleFront("front-1")
	if !s.FrontExpanded("front-1") {
		t.Fatalf("expected front-1 expanded")
	}
	s.ToggleFront("front-1")
	if s.FrontExpanded("front-1") {
		t.Fatalf("expected front-1 collapsed")
	}

	s.ToggleDanger("danger-1")
	if !s.DangerExpanded("danger-1") {
		t.Fatalf("expected danger-1 expanded")
	}
}

func TestStaleIDsAreHarmlessNoOps(t *testing.T) {
	s := NewUIState()
	s.ExpandFront("front-gone")
	s.ExpandDanger("danger-gone")

	// ids absent from a freshly fetched document simply have no effect
	if !s.FrontExpanded("front-gone") || !s.DangerExpanded("danger-gone") {
		t.Fatalf("stale ids stay in the set")
	}
	if s.FrontExpanded("front-present") {
		t.Fatalf("unknown id must read as collapsed")
	}
}

func TestExpandIgnoresEmptyID(t *testing.T) {
	s := NewUIState()
	s.ExpandFront("")
	s.ExpandDanger("")
	if len(s.ExpandedFronts)+len(s.ExpandedDangers) != 0 {
		t.Fatalf("empty ids must not be recorded")
	}
}
