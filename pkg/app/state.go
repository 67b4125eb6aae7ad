package app

// UIState is the client-local view state that has no server representation:
// which fronts and dangers render expanded, the scroll offset, and the
// loading/error/dirty flags. Expanded ids may go stale after a refetch;
// membership tests on stale ids are harmless no-ops, never errors.
type UIState struct {
	ExpandedFronts  map[string]bool
	ExpandedDangers map[string]bool

	Scroll  int
	Loading bool
	Err     string

	// Dirty marks the unsaved-changes window after a failed save: the
	// in-memory mutation is applied locally but not durable remotely.
	Dirty bool
}

// NewUIState returns an empty, fully collapsed view state.
func NewUIState() *UIState {
	return &UIState{
		ExpandedFronts:  make(map[string]bool),
		ExpandedDangers: make(map[string]bool),
	}
}

// ToggleFront flips a front's expansion.
func (s *UIState) ToggleFront(id string) {
	if s.ExpandedFronts[id] {
		delete(s.ExpandedFronts, id)
		return
	}
	s.ExpandedFronts[id] = true
}

// ToggleDanger flips a danger's expansion.
func (s *UIState) ToggleDanger(id string) {
	if s.ExpandedDangers[id] {
		delete(s.ExpandedDangers, id)
		return
	}
	s.ExpandedDangers[id] = true
}

// ExpandFront marks a front expanded so it renders open immediately, e.g.
// right after creation and before the reconciling refetch lands.
func (s *UIState) ExpandFront(id string) {
	if id != "" {
		s.ExpandedFronts[id] = true
	}
}

// ExpandDanger marks a danger expanded.
func (s *UIState) ExpandDanger(id string) {
	if id != "" {
		s.ExpandedDangers[id] = true
	}
}

// FrontExpanded reports whether a front renders expanded.
func (s *UIState) FrontExpanded(id string) bool { return s.ExpandedFronts[id] }

// DangerExpanded reports whether a danger renders expanded.
func (s *UIState) DangerExpanded(id string) bool { return s.ExpandedDangers[id] }
