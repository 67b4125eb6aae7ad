package advance

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

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

func (f *staleRemote) ToggleSecret(context.Context, string, string) (*front.Secret, error) {
	return nil, errors.New("unused")
}

func (f *staleRemote) TogglePortent(_ context.Context, dangerID, portentID string) (*front.GrimPortent, error) {
	_, d := f.doc.Danger(dangerID)
	if d == nil {
		return nil, errors.New("no such danger")
	}
	p := d.Portent(portentID)
	if p == nil {
		return nil, errors.New("no such portent")
	}
	p.Completed = !p.Completed
	out := *p
	return &out, nil
}

func TestAdvanceSurvivesFailedRefetch(t *testing.T) {
	remote := &staleRemote{doc: front.Document{Fronts: []front.Front{{
		ID:   "front-1",
		Name: "The Hollow King",
		Dangers: []front.Danger{{
			ID:           "danger-1",
			Name:         "Cult of Ash",
			GrimPortents: []front.GrimPortent{{ID: "portent-1", Text: "Ash falls on the harvest"}},
		}},
	}}}}

	a := &Advance{PortentID: "portent-1", Service: app.New(remote)}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("the toggle landed; a failed refetch must not fail the run: %v", err)
	}
	if !remote.doc.Fronts[0].Dangers[0].GrimPortents[0].Completed {
		t.Fatalf("portent should be completed on the remote")
	}
}

func TestAdvanceUnknownPortent(t *testing.T) {
	remote := &staleRemote{doc: front.Document{Fronts: []front.Front{{ID: "front-1"}}}}
	a := &Advance{PortentID: "portent-missing", Service: app.New(remote)}
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown portent id")
	}
}
