package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/grimportent/fronts/pkg/runner/snapshot"
	"github.com/grimportent/fronts/pkg/store"
)

func addSnapshot(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Archive and restore whole-document snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSnapshotSave(cmd)
	addSnapshotList(cmd)
	addSnapshotRestore(cmd)

	topLevel.AddCommand(cmd)
}

func addSnapshotSave(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Fetch the current document and archive it locally",
		Example: `
fronts snapshot save
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService(nil)
			if err != nil {
				return err
			}
			snaps, err := store.NewSnapshots(cfg)
			if err != nil {
				return err
			}
			s := snapshot.Save{
				Service:   svc,
				Snapshots: snaps,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSnapshotList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived snapshots",
		Example: `
fronts snapshot list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			snaps, err := store.NewSnapshots(cfg)
			if err != nil {
				return err
			}
			s := snapshot.List{Snapshots: snaps}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSnapshotRestore(topLevel *cobra.Command) {
	name := ""
	cmd := &cobra.Command{
		Use:   "restore [name]",
		Short: "Push an archived snapshot back to the server",
		Example: `
fronts snapshot restore 2026-08-31T12-00-00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one snapshot name")
			}
			name = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService(nil)
			if err != nil {
				return err
			}
			snaps, err := store.NewSnapshots(cfg)
			if err != nil {
				return err
			}
			s := snapshot.Restore{
				Name:      name,
				Service:   svc,
				Snapshots: snaps,
				Remote:    svc.Remote,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
