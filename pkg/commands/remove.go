package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/commands/options"
	"github.com/grimportent/fronts/pkg/dialog"
	"github.com/grimportent/fronts/pkg/runner/remove"
)

// terminalConfirm asks on stdin before a destructive delete goes through.
func terminalConfirm(_ context.Context, title, message string) (bool, error) {
	fmt.Printf("\n%s\n%s [y/N]: ", title, message)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

func confirmFor(co *options.ConfirmOptions) dialog.ConfirmFunc {
	if co.Yes {
		return dialog.AlwaysConfirm
	}
	return terminalConfirm
}

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove fronts, dangers, secrets, and grim portents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveFront(cmd)
	addRemoveDanger(cmd)
	addRemoveLore(cmd)

	topLevel.AddCommand(cmd)
}

func addRemoveFront(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	id := ""
	cmd := &cobra.Command{
		Use:   "front [id]",
		Short: "Remove a front and everything under it",
		Example: `
fronts rm front front-1700000000000-a1b2
fronts rm front --yes front-1700000000000-a1b2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one front id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(confirmFor(co))
			if err != nil {
				return err
			}
			s := remove.Front{
				FrontID: id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}

func addRemoveDanger(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	id := ""
	cmd := &cobra.Command{
		Use:   "danger [id]",
		Short: "Remove a danger and everything under it",
		Example: `
fronts rm danger danger-1700000000000-c3d4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one danger id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(confirmFor(co))
			if err != nil {
				return err
			}
			s := remove.Danger{
				DangerID: id,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}

func addRemoveLore(topLevel *cobra.Command) {
	id := ""
	cmd := &cobra.Command{
		Use:   "lore [id]",
		Short: "Remove a secret or grim portent by id",
		Example: `
fronts rm lore secret-1700000000000-e5f6
fronts rm lore portent-1700000000000-a7b8
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := remove.Lore{
				ID:      id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
