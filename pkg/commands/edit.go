package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/commands/options"
	"github.com/grimportent/fronts/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit fronts, dangers, secrets, and grim portents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditFront(cmd)
	addEditDanger(cmd)
	addEditLore(cmd)

	topLevel.AddCommand(cmd)
}

func addEditFront(topLevel *cobra.Command) {
	fo := &options.FrontOptions{}

	name := ""
	cmd := &cobra.Command{
		Use:   "front [new name]",
		Short: "Rename a front",
		Example: `
fronts edit front --front front-1 The Risen King
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a new name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if fo.Front == "" {
				return errors.New("requires --front")
			}
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := edit.FrontName{
				FrontID: fo.Front,
				Name:    name,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFrontArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

func addEditDanger(topLevel *cobra.Command) {
	do := &options.DangerOptions{}

	name := ""
	cmd := &cobra.Command{
		Use:   "danger [new name]",
		Short: "Rewrite a danger's descriptive fields",
		Example: `
fronts edit danger --danger danger-1 --impulse "to consume" Cult of Embers
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a danger name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if do.Danger == "" {
				return errors.New("requires --danger")
			}
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := edit.Danger{
				DangerID:   do.Danger,
				Name:       name,
				DangerType: do.DangerType,
				Impulse:    do.Impulse,
				Doom:       do.Doom,
				Service:    svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDangerArgs(cmd, do)
	options.AddDangerFieldArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addEditLore(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	xp := 0
	text := ""
	cmd := &cobra.Command{
		Use:   "lore [new text]",
		Short: "Rewrite a secret or grim portent by id",
		Example: `
fronts edit lore --id secret-1 --xp 50 The high priest was never mortal
fronts edit lore --id portent-1 Ash chokes the river
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires new text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("requires --id")
			}
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := edit.Lore{
				ID:      io.ID,
				Text:    text,
				XP:      xp,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	cmd.Flags().IntVar(&xp, "xp", 0, "New xp for a secret; 0 keeps the current value.")

	topLevel.AddCommand(cmd)
}
