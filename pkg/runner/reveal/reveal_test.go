package reveal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/front"
)

// staleRemote serves one good fetch, flips toggles, then fails every
// later fetch, so the reconciling refetch after a toggle breaks.
type staleRemote struct {
	doc     front.Document
	fetches int
}

func (f *staleRemote) FetchAll(context.Context) (*front.Document, error) {
	f.fetches++
	if f.fetches > 1 {
		return nil, errors.New("server unavailable")
	}
	b, _ := json.Marshal(f.doc)
	var out front.Document
	_ = json.Unmarshal(b, &out)
	return &out, nil
}

func (f *staleRemote) SaveAll(context.Context, *front.Document) error { return nil }

func (f *staleRemote) ToggleSecret(_ context.Context, dangerID, secretID string) (*front.Secret, error) {
	_, d := f.doc.Danger(dangerID)
	if d == nil {
		return nil, errors.New("no such danger")
	}
	s := d.Secret(secretID)
	if s == nil {
		return nil, errors.New("no such secret")
	}
	s.Revealed = !s.Revealed
	if s.Revealed {
		now := time.Now().UTC()
		s.RevealedAt = &now
	}
	out := *s
	return &out, nil
}

func (f *staleRemote) TogglePortent(context.Context, string, string) (*front.GrimPortent, error) {
	return nil, errors.New("unused")
}

func TestRevealSurvivesFailedRefetch(t *testing.T) {
	remote := &staleRemote{doc: front.Document{Fronts: []front.Front{{
		ID:   "front-1",
		Name: "The Hollow King",
		Dangers: []front.Danger{{
			ID:      "danger-1",
			Name:    "Cult of Ash",
			Secrets: []front.Secret{{ID: "secret-1", XP: 30, Text: "The high priest is already dead"}},
		}},
	}}}}

	r := &Reveal{SecretID: "secret-1", Service: app.New(remote)}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("the toggle landed; a failed refetch must not fail the run: %v", err)
	}
	if !remote.doc.Fronts[0].Dangers[0].Secrets[0].Revealed {
		t.Fatalf("secret should be revealed on the remote")
	}
}

func TestRevealUnknownSecret(t *testing.T) {
	remote := &staleRemote{doc: front.Document{Fronts: []front.Front{{ID: "front-1"}}}}
	r := &Reveal{SecretID: "secret-missing", Service: app.New(remote)}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown secret id")
	}
}
