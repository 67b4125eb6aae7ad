package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the glyphs used for fronts, dangers, secrets, and portents",
		Example: `
fronts key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
