// Package remove holds the runners behind `fronts rm ...`. Entity removal
// (fronts, dangers) runs through the confirmation gate; line items do not.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/grimportent/fronts/pkg/app"
)

// Front deletes a whole front.
type Front struct {
	FrontID string

	Service *app.Service
}

func (n *Front) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	if err := n.Service.DeleteFront(ctx, n.FrontID); err != nil {
		if errors.Is(err, app.ErrDeclined) {
			_, _ = color.New(color.Faint).Println("\nNothing deleted.")
			return nil
		}
		return err
	}
	_, _ = color.New().Println("\nFront deleted.")
	return nil
}

// Danger deletes one danger.
type Danger struct {
	DangerID string

	Service *app.Service
}

func (n *Danger) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	if err := n.Service.DeleteDanger(ctx, n.DangerID); err != nil {
		if errors.Is(err, app.ErrDeclined) {
			_, _ = color.New(color.Faint).Println("\nNothing deleted.")
			return nil
		}
		return err
	}
	_, _ = color.New().Println("\nDanger deleted.")
	return nil
}

// Lore deletes a secret or grim portent by id, resolving the owner first.
type Lore struct {
	ID string

	Service *app.Service
}

func (n *Lore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}

	doc := n.Service.Document()
	for i := range doc.Fronts {
		for j := range doc.Fronts[i].Dangers {
			d := &doc.Fronts[i].Dangers[j]
			if d.Secret(n.ID) != nil {
				return n.Service.DeleteSecret(ctx, d.ID, n.ID)
			}
			if d.Portent(n.ID) != nil {
				return n.Service.DeletePortent(ctx, d.ID, n.ID)
			}
		}
	}
	return fmt.Errorf("no secret or grim portent with id %q", n.ID)
}
