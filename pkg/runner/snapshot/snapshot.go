// Package snapshot archives and restores local copies of the document.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/store"
)

// Save fetches the current document and writes a timestamped snapshot.
type Save struct {
	Service   *app.Service
	Snapshots store.Snapshots
}

func (n *Save) Do(ctx context.Context) error {
	if n.Service == nil || n.Snapshots == nil {
		return errors.New("can not snapshot, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	name, err := n.Snapshots.Save(n.Service.Document())
	if err != nil {
		return err
	}
	_, _ = color.New().Printf("\nSnapshot %s saved.\n", name)
	return nil
}

// List prints the archived snapshot names.
type List struct {
	Snapshots store.Snapshots
}

func (n *List) Do(ctx context.Context) error {
	if n.Snapshots == nil {
		return errors.New("can not list, no snapshot store")
	}
	names, err := n.Snapshots.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Println("\nno snapshots yet")
		return nil
	}
	fmt.Println("")
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// Restore pushes an archived snapshot back to the server, replacing
// server state wholesale like every other save.
type Restore struct {
	Name      string
	Service   *app.Service
	Snapshots store.Snapshots
	Remote    store.Remote
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Snapshots == nil || n.Remote == nil {
		return errors.New("can not restore, no snapshot store")
	}
	doc, err := n.Snapshots.Load(n.Name)
	if err != nil {
		return err
	}
	if err := n.Remote.SaveAll(ctx, doc); err != nil {
		return err
	}
	_, _ = color.New().Printf("\nSnapshot %s restored.\n", n.Name)
	return nil
}
