package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/commands/options"
	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FrontOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [front]",
		Short: "Get all fronts, or one front by name or id",
		Example: `
fronts get
fronts get "The Hollow King"
fronts get --type campaign
fronts get front-1700000000000-a1b2 --show-id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fo.Front = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := front.ParseType(fo.Type)
			if err != nil {
				return err
			}
			if fo.Type == "" {
				t = ""
			}
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Front:   fo.Front,
				Type:    t,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTypeArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
