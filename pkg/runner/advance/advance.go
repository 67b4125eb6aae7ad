package advance

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/glyph"
)

// Advance toggles a grim portent's completed state on the server, ticking
// the danger's doom clock forward (or back, when correcting a mistake).
type Advance struct {
	PortentID string

	Service *app.Service
}

func (n *Advance) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not advance, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}

	dangerID := ""
	doc := n.Service.Document()
	for i := range doc.Fronts {
		for j := range doc.Fronts[i].Dangers {
			if doc.Fronts[i].Dangers[j].Portent(n.PortentID) != nil {
				dangerID = doc.Fronts[i].Dangers[j].ID
			}
		}
	}
	if dangerID == "" {
		return fmt.Errorf("no grim portent with id %q", n.PortentID)
	}

	// A non-nil portent with an error means the toggle landed but the
	// reconciling refetch did not; the server's answer still stands.
	portent, err := n.Service.TogglePortent(ctx, dangerID, n.PortentID)
	if portent == nil {
		return err
	}

	if portent.Completed {
		c := color.New(color.Bold)
		_, _ = c.Printf("\n%s %s\n", glyph.PortentDone.String(), glyph.Strike(portent.Text))
	} else {
		c := color.New()
		_, _ = c.Printf("\n%s %s\n", glyph.Portent.String(), portent.Text)
	}
	if err != nil {
		c := color.New(color.Faint)
		_, _ = c.Printf("(refresh after toggle failed, local view may be stale: %v)\n", err)
	}
	return nil
}
