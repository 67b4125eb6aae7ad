package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/runner/advance"
)

func addAdvance(topLevel *cobra.Command) {
	id := ""
	cmd := &cobra.Command{
		Use:   "advance [portent id]",
		Short: "Toggle a grim portent on a danger's doom clock",
		Example: `
fronts advance portent-1700000000000-a7b8
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one grim portent id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := advance.Advance{
				PortentID: id,
				Service:   svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
