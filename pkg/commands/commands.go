package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/dialog"
	"github.com/grimportent/fronts/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "fronts",
		Short: base.Wrap80("Campaign fronts, dangers, and grim portents on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addReveal(topLevel)
	addAdvance(topLevel)
	addSnapshot(topLevel)
	addVersion(topLevel)
}

// newService builds the remote-backed service every command runs against.
func newService(confirm dialog.ConfirmFunc) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	remote, err := store.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := app.New(remote)
	svc.Confirm = confirm
	svc.ConfirmDeletes = cfg.ConfirmDeletes() && confirm != nil
	return svc, cfg, nil
}
