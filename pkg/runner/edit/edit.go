// Package edit holds the runners behind `fronts edit ...`.
package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/printers"
)

// FrontName renames a front.
type FrontName struct {
	FrontID string
	Name    string

	Service *app.Service
}

func (n *FrontName) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	if err := n.Service.EditFrontName(ctx, n.FrontID, n.Name); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Front(n.Service.Document().Front(n.FrontID))
	return nil
}

// Danger rewrites a danger's descriptive fields.
type Danger struct {
	DangerID   string
	Name       string
	DangerType string
	Impulse    string
	Doom       string

	Service *app.Service
}

func (n *Danger) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	if err := n.Service.EditDanger(ctx, n.DangerID, n.Name, n.DangerType, n.Impulse, n.Doom); err != nil {
		return err
	}
	_, d := n.Service.Document().Danger(n.DangerID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Danger(d)
	return nil
}

// Lore rewrites the text (and for secrets, the xp) of a secret or portent.
type Lore struct {
	ID   string
	Text string
	XP   int // secrets only; 0 keeps the current value

	Service *app.Service
}

func (n *Lore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}

	doc := n.Service.Document()
	for i := range doc.Fronts {
		for j := range doc.Fronts[i].Dangers {
			d := &doc.Fronts[i].Dangers[j]
			if s := d.Secret(n.ID); s != nil {
				xp := n.XP
				if xp == 0 {
					xp = s.XP
				}
				if err := n.Service.EditSecret(ctx, d.ID, n.ID, xp, n.Text); err != nil {
					return err
				}
				return printDanger(n.Service, d.ID)
			}
			if d.Portent(n.ID) != nil {
				if err := n.Service.EditPortent(ctx, d.ID, n.ID, n.Text); err != nil {
					return err
				}
				return printDanger(n.Service, d.ID)
			}
		}
	}
	return fmt.Errorf("no secret or grim portent with id %q", n.ID)
}

func printDanger(svc *app.Service, dangerID string) error {
	_, d := svc.Document().Danger(dangerID)
	if d == nil {
		return fmt.Errorf("danger %q not found after save", dangerID)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Danger(d)
	return nil
}
