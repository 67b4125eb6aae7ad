// Package add holds the one-shot runners behind `fronts add ...`.
package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/printers"
)

// Front creates a new front.
type Front struct {
	Name string
	Type front.Type

	Service *app.Service
}

func (n *Front) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	id, err := n.Service.AddFront(ctx, n.Name, n.Type)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Front(n.Service.Document().Front(id))
	return nil
}

// Danger creates a danger under a front.
type Danger struct {
	FrontID    string
	Name       string
	DangerType string
	Impulse    string
	Doom       string

	Service *app.Service
}

func (n *Danger) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	id, err := n.Service.AddDanger(ctx, n.FrontID, n.Name, n.DangerType, n.Impulse, n.Doom)
	if err != nil {
		return err
	}
	_, d := n.Service.Document().Danger(id)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Danger(d)
	return nil
}

// Secret adds a secret to a danger.
type Secret struct {
	DangerID string
	XP       int
	Text     string

	Service *app.Service
}

func (n *Secret) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	if _, err := n.Service.AddSecret(ctx, n.DangerID, n.XP, n.Text); err != nil {
		return err
	}
	return printDanger(n.Service, n.DangerID)
}

// Portent adds a grim portent to a danger.
type Portent struct {
	DangerID string
	Text     string

	Service *app.Service
}

func (n *Portent) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	if _, err := n.Service.AddPortent(ctx, n.DangerID, n.Text); err != nil {
		return err
	}
	return printDanger(n.Service, n.DangerID)
}

// LineKind names the plain string lists a Line runner can target.
type LineKind string

const (
	Cast     LineKind = "cast"
	Stake    LineKind = "stake"
	Hook     LineKind = "hook"
	Location LineKind = "location"
)

// Line appends to one of the string lists on a front or danger.
type Line struct {
	Kind     LineKind
	TargetID string // front id for cast/stake/hook, danger id for location
	Text     string

	Service *app.Service
}

func (n *Line) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	var err error
	switch n.Kind {
	case Cast:
		err = n.Service.AddCast(ctx, n.TargetID, n.Text)
	case Stake:
		err = n.Service.AddStake(ctx, n.TargetID, n.Text)
	case Hook:
		err = n.Service.AddHook(ctx, n.TargetID, n.Text)
	case Location:
		err = n.Service.AddLocation(ctx, n.TargetID, n.Text)
	default:
		err = fmt.Errorf("unknown line kind %q", n.Kind)
	}
	if err != nil {
		return err
	}
	if n.Kind == Location {
		return printDanger(n.Service, n.TargetID)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Front(n.Service.Document().Front(n.TargetID))
	return nil
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
