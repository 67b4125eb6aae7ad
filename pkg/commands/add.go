package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/commands/options"
	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add fronts, dangers, and their details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddFront(cmd)
	addAddDanger(cmd)
	addAddSecret(cmd)
	addAddPortent(cmd)
	addAddLine(cmd, "cast", add.Cast, "Add a cast member to a front",
		"fronts add cast --front front-1 Mirelle the seer")
	addAddLine(cmd, "stake", add.Stake, "Add a stakes question to a front",
		"fronts add stake --front front-1 Who holds the pass?")
	addAddLine(cmd, "hook", add.Hook, "Add a player hook to a front",
		"fronts add hook --front front-1 The twins owe the king a debt")
	addAddLine(cmd, "location", add.Location, "Add a location to a danger",
		"fronts add location --danger danger-1 The sunken shrine")

	topLevel.AddCommand(cmd)
}

func addAddFront(topLevel *cobra.Command) {
	fo := &options.FrontOptions{}

	cmd := &cobra.Command{
		Use:   "front [name]",
		Short: "Add a front",
		Example: `
fronts add front The Hollow King
fronts add front --type campaign The Hollow King
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a front name")
			}
			fo.Front = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := front.ParseType(fo.Type)
			if err != nil {
				return err
			}
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := add.Front{
				Name:    fo.Front,
				Type:    t,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTypeArg(cmd, fo)

	topLevel.AddCommand(cmd)
}

func addAddDanger(topLevel *cobra.Command) {
	fo := &options.FrontOptions{}
	do := &options.DangerOptions{}

	name := ""
	cmd := &cobra.Command{
		Use:   "danger [name]",
		Short: "Add a danger to a front",
		Example: `
fronts add danger --front front-1 Cult of Ash
fronts add danger --front front-1 --impulse "to usher in the king's return" Cult of Ash
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a danger name")
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
			s := add.Danger{
				FrontID:    fo.Front,
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

	options.AddFrontArgs(cmd, fo)
	options.AddDangerFieldArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addAddSecret(topLevel *cobra.Command) {
	do := &options.DangerOptions{}

	xp := 20
	text := ""
	cmd := &cobra.Command{
		Use:   "secret [text]",
		Short: "Add a discoverable secret to a danger",
		Example: `
fronts add secret --danger danger-1 --xp 30 The high priest is already dead
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires secret text")
			}
			text = strings.Join(args, " ")
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
			s := add.Secret{
				DangerID: do.Danger,
				XP:       xp,
				Text:     text,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDangerArgs(cmd, do)
	cmd.Flags().IntVar(&xp, "xp", 20, "Experience awarded on reveal, one of 20, 30, 50.")

	topLevel.AddCommand(cmd)
}

func addAddPortent(topLevel *cobra.Command) {
	do := &options.DangerOptions{}

	text := ""
	cmd := &cobra.Command{
		Use:   "portent [text]",
		Short: "Add a grim portent to a danger's doom clock",
		Example: `
fronts add portent --danger danger-1 Ash falls on the harvest
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires portent text")
			}
			text = strings.Join(args, " ")
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
			s := add.Portent{
				DangerID: do.Danger,
				Text:     text,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDangerArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addAddLine(topLevel *cobra.Command, use string, kind add.LineKind, short, example string) {
	fo := &options.FrontOptions{}
	do := &options.DangerOptions{}

	text := ""
	cmd := &cobra.Command{
		Use:     use + " [text]",
		Short:   short,
		Example: "\n" + example + "\n",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := fo.Front
			if kind == add.Location {
				target = do.Danger
			}
			if target == "" {
				return errors.New("requires a target front or danger")
			}
			svc, _, err := newService(nil)
			if err != nil {
				return err
			}
			s := add.Line{
				Kind:     kind,
				TargetID: target,
				Text:     text,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	if kind == add.Location {
		options.AddDangerArgs(cmd, do)
	} else {
		options.AddFrontArgs(cmd, fo)
	}

	topLevel.AddCommand(cmd)
}
