package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/runner/reveal"
)

func addReveal(topLevel *cobra.Command) {
	id := ""
	cmd := &cobra.Command{
		Use:   "reveal [secret id]",
		Short: "Toggle a secret between hidden and revealed",
		Example: `
fronts reveal secret-1700000000000-e5f6
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one secret id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := reveal.Reveal{
				SecretID: id,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
