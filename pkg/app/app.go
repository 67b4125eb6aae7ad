// Package app orchestrates mutations against the authoritative fronts
// server. Every mutating path follows the same protocol: resolve the target
// in the current in-memory document, apply the change locally, save the
// whole document, then refetch it wholesale and rebuild derived state. The
// refetch is the consistency mechanism; the in-memory tree only exists to
// be rendered between round-trips.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/grimportent/fronts/pkg/dialog"
	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/store"
)

var (
	// ErrVanished means the mutation target disappeared between render
	// and execution, usually because another client deleted it.
	ErrVanished = errors.New("app: target no longer exists")
	// ErrEmptyInput rejects blank or whitespace-only required text.
	ErrEmptyInput = errors.New("app: required text is empty")
	// ErrDeclined means the user answered no to a delete confirmation.
	ErrDeclined = errors.New("app: deletion declined")
	// ErrNoDocument means no document has been fetched yet.
	ErrNoDocument = errors.New("app: no document loaded")
)

// Service owns one client's in-memory document and view state. A single
// instance serves one UI for its lifetime; the mutex is the explicit
// in-flight-mutation lock that serializes save+refetch round-trips so a
// second mutation can never save a payload that predates the first.
type Service struct {
	Remote store.Remote
	State  *UIState

	// Confirm gates destructive operations when ConfirmDeletes is set.
	// Line-item deletions (cast, stakes, portents, ...) never prompt.
	Confirm        dialog.ConfirmFunc
	ConfirmDeletes bool

	mu     sync.Mutex
	doc    *front.Document
	owners map[string]string
}

// New returns a Service with fresh view state.
func New(remote store.Remote) *Service {
	return &Service{
		Remote: remote,
		State:  NewUIState(),
	}
}

// Document returns the current in-memory document. Nil until the first
// successful fetch or after a failed initial load.
func (s *Service) Document() *front.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// DangerOwner resolves the owning front id for a danger id from the index
// rebuilt on each document replacement.
func (s *Service) DangerOwner(dangerID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.owners[dangerID]
	return id, ok
}

// Refresh discards the in-memory document and refetches from the server.
// On failure a prior document (if any) stays visible under an error banner.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

// reload performs the refetch-as-reconciliation step. Callers hold s.mu.
func (s *Service) reload(ctx context.Context) error {
	if s.Remote == nil {
		return errors.New("app: no remote configured")
	}
	s.State.Loading = true
	doc, err := s.Remote.FetchAll(ctx)
	s.State.Loading = false
	if err != nil {
		s.State.Err = err.Error()
		return err
	}
	s.doc = doc
	s.owners = doc.DangerOwners()
	s.State.Err = ""
	s.State.Dirty = false
	return nil
}

// mutate runs one mutation under the in-flight lock: apply, save, refetch.
// On save failure the local mutation stays applied but is not durable; the
// dirty flag marks that divergence window and no refetch happens. A
// vanished target still triggers a best-effort refetch so the view catches
// up with whoever deleted it.
func (s *Service) mutate(ctx context.Context, apply func(doc *front.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Remote == nil {
		return errors.New("app: no remote configured")
	}
	if s.doc == nil {
		return ErrNoDocument
	}
	if err := apply(s.doc); err != nil {
		if errors.Is(err, ErrVanished) {
			_ = s.reload(ctx)
		}
		return err
	}
	if err := s.Remote.SaveAll(ctx, s.doc); err != nil {
		s.State.Dirty = true
		s.State.Err = err.Error()
		return err
	}
	return s.reload(ctx)
}

func requireText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyInput
	}
	return text, nil
}

func (s *Service) confirmDelete(ctx context.Context, title, message string) error {
	if !s.ConfirmDeletes || s.Confirm == nil {
		return nil
	}
	ok, err := s.Confirm(ctx, title, message)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

// AddFront creates a front and expands it so it renders open immediately,
// even though the following refetch replaces the object identity.
func (s *Service) AddFront(ctx context.Context, name string, t front.Type) (string, error) {
	name, err := requireText(name)
	if err != nil {
		return "", err
	}
	f := front.NewFront(name, t)
	err = s.mutate(ctx, func(doc *front.Document) error {
		doc.Fronts = append(doc.Fronts, f)
		s.State.ExpandFront(f.ID)
		return nil
	})
	return f.ID, err
}

// EditFrontName renames a front.
func (s *Service) EditFrontName(ctx context.Context, frontID, name string) error {
	name, err := requireText(name)
	if err != nil {
		return err
	}
	return s.mutate(ctx, func(doc *front.Document) error {
		f := doc.Front(frontID)
		if f == nil {
			return ErrVanished
		}
		f.Name = name
		return nil
	})
}

// DeleteFront removes a front and everything it owns, after confirmation.
func (s *Service) DeleteFront(ctx context.Context, frontID string) error {
	s.mu.Lock()
	name := ""
	if f := s.doc.Front(frontID); f != nil {
		name = f.Name
	}
	s.mu.Unlock()
	if err := s.confirmDelete(ctx, "Delete front", fmt.Sprintf("Delete front %q and all of its dangers?", name)); err != nil {
		return err
	}
	return s.mutate(ctx, func(doc *front.Document) error {
		for i := range doc.Fronts {
			if doc.Fronts[i].ID == frontID {
				doc.Fronts = append(doc.Fronts[:i], doc.Fronts[i+1:]...)
				return nil
			}
		}
		return ErrVanished
	})
}

// AddDanger creates a danger under a front and expands both.
func (s *Service) AddDanger(ctx context.Context, frontID, name, dangerType, impulse, doom string) (string, error) {
	name, err := requireText(name)
	if err != nil {
		return "", err
	}
	d := front.NewDanger(name, strings.TrimSpace(dangerType), strings.TrimSpace(impulse), strings.TrimSpace(doom))
	err = s.mutate(ctx, func(doc *front.Document) error {
		f := doc.Front(frontID)
		if f == nil {
			return ErrVanished
		}
		f.Dangers = append(f.Dangers, d)
		s.State.ExpandFront(frontID)
		s.State.ExpandDanger(d.ID)
		return nil
	})
	return d.ID, err
}

// EditDanger updates a danger's descriptive fields.
func (s *Service) EditDanger(ctx context.Context, dangerID, name, dangerType, impulse, doom string) error {
	name, err := requireText(name)
	if err != nil {
		return err
	}
	return s.mutate(ctx, func(doc *front.Document) error {
		_, d := doc.Danger(dangerID)
		if d == nil {
			return ErrVanished
		}
		d.Name = name
		d.DangerType = strings.TrimSpace(dangerType)
		d.Impulse = strings.TrimSpace(impulse)
		d.ImpendingDoom = strings.TrimSpace(doom)
		return nil
	})
}

// DeleteDanger removes a danger after confirmation.
func (s *Service) DeleteDanger(ctx context.Context, dangerID string) error {
	s.mu.Lock()
	name := ""
	if _, d := s.doc.Danger(dangerID); d != nil {
		name = d.Name
	}
	s.mu.Unlock()
	if err := s.confirmDelete(ctx, "Delete danger", fmt.Sprintf("Delete danger %q?", name)); err != nil {
		return err
	}
	return s.mutate(ctx, func(doc *front.Document) error {
		f, d := doc.Danger(dangerID)
		if d == nil {
			return ErrVanished
		}
		for i := range f.Dangers {
			if f.Dangers[i].ID == dangerID {
				f.Dangers = append(f.Dangers[:i], f.Dangers[i+1:]...)
				return nil
			}
		}
		return ErrVanished
	})
}

// ToggleSecret asks the server to flip a secret's revealed state. The
// server owns revealedAt and the XP economy, so the client never computes
// the flip; the returned secret feeds the user notification.
func (s *Service) ToggleSecret(ctx context.Context, dangerID, secretID string) (*front.Secret, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	_, d := s.doc.Danger(dangerID)
	if d == nil || d.Secret(secretID) == nil {
		_ = s.reload(ctx)
		return nil, ErrVanished
	}
	secret, err := s.Remote.ToggleSecret(ctx, dangerID, secretID)
	if err != nil {
		s.State.Err = err.Error()
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return secret, err
	}
	return secret, nil
}

// TogglePortent asks the server to flip a grim portent's completed state.
func (s *Service) TogglePortent(ctx context.Context, dangerID, portentID string) (*front.GrimPortent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	_, d := s.doc.Danger(dangerID)
	if d == nil || d.Portent(portentID) == nil {
		_ = s.reload(ctx)
		return nil, ErrVanished
	}
	portent, err := s.Remote.TogglePortent(ctx, dangerID, portentID)
	if err != nil {
		s.State.Err = err.Error()
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return portent, err
	}
	return portent, nil
}
