package reveal

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/grimportent/fronts/pkg/app"
)

// Reveal toggles a secret's revealed state on the server. Only the secret
// id is required on the command line; the owning danger is resolved from
// the danger index.
type Reveal struct {
	SecretID string

	Service *app.Service
}

func (n *Reveal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reveal, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}

	dangerID := ""
	doc := n.Service.Document()
	for i := range doc.Fronts {
		for j := range doc.Fronts[i].Dangers {
			if doc.Fronts[i].Dangers[j].Secret(n.SecretID) != nil {
				dangerID = doc.Fronts[i].Dangers[j].ID
			}
		}
	}
	if dangerID == "" {
		return fmt.Errorf("no secret with id %q", n.SecretID)
	}

	// A non-nil secret with an error means the toggle landed but the
	// reconciling refetch did not; the server's answer still stands.
	secret, err := n.Service.ToggleSecret(ctx, dangerID, n.SecretID)
	if secret == nil {
		return err
	}

	if secret.Revealed {
		c := color.New(color.Bold)
		_, _ = c.Printf("\nSecret revealed (+%d xp): %s\n", secret.XP, secret.Text)
	} else {
		c := color.New(color.Faint)
		_, _ = c.Printf("\nSecret hidden again: %s\n", secret.Text)
	}
	if err != nil {
		c := color.New(color.Faint)
		_, _ = c.Printf("(refresh after toggle failed, local view may be stale: %v)\n", err)
	}
	return nil
}
