package front

import (
	"testing"
	"time"
)

func TestCloneIsDeep(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	doc := &Document{Fronts: []Front{{
		ID:     "front-1",
		Name:   "The Hollow King",
		Type:   TypeCampaign,
		Cast:   []string{"Mirelle"},
		Stakes: []string{},
		Dangers: []Danger{{
			ID:           "danger-1",
			Name:         "Cult of Ash",
			GrimPortents: []GrimPortent{{ID: "portent-1", Text: "Ash falls"}},
			Secrets:      []Secret{{ID: "secret-1", XP: 30, Revealed: true, RevealedAt: &at}},
			Locations:    []string{"The sunken shrine"},
		}},
	}}}

	c := doc.Clone()
	c.Fronts[0].Name = "changed"
	c.Fronts[0].Cast[0] = "changed"
	c.Fronts[0].Dangers[0].GrimPortents[0].Completed = true
	c.Fronts[0].Dangers[0].Secrets[0].Revealed = false
	*c.Fronts[0].Dangers[0].Secrets[0].RevealedAt = time.Time{}
	c.Fronts = append(c.Fronts, Front{ID: "front-2"})

	if doc.Fronts[0].Name != "The Hollow King" || doc.Fronts[0].Cast[0] != "Mirelle" {
		t.Fatalf("clone shares front data with the original")
	}
	if doc.Fronts[0].Dangers[0].GrimPortents[0].Completed {
		t.Fatalf("clone shares portent data with the original")
	}
	s := doc.Fronts[0].Dangers[0].Secrets[0]
	if !s.Revealed || !s.RevealedAt.Equal(at) {
		t.Fatalf("clone shares secret data with the original")
	}
	if len(doc.Fronts) != 1 {
		t.Fatalf("clone shares the fronts slice with the original")
	}
	if c.Fronts[0].Stakes == nil {
		t.Fatalf("empty slices must stay non-nil in the clone")
	}
}

func TestCloneNil(t *testing.T) {
	var doc *Document
	if doc.Clone() != nil {
		t.Fatalf("nil document should clone to nil")
	}
}
