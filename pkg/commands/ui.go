package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/runner/basicui"
	"github.com/grimportent/fronts/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	basic := false
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
fronts ui
fronts ui --basic
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService(nil)
			if err != nil {
				return err
			}
			if basic {
				i := basicui.UI{Service: svc}
				return i.Do(context.Background())
			}
			return tui.Run(svc, cfg.ConfirmDeletes())
		},
	}

	cmd.Flags().BoolVar(&basic, "basic", false, "Use the plain two-pane browser instead of the full UI.")

	topLevel.AddCommand(cmd)
}
