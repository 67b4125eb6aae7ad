package options

import (
	"github.com/spf13/cobra"
)

// DangerOptions captures the descriptive danger fields set by flags.
type DangerOptions struct {
	Danger     string
	DangerType string
	Impulse    string
	Doom       string
}

// AddDangerArgs wires the danger selection flag on the provided command.
func AddDangerArgs(cmd *cobra.Command, o *DangerOptions) {
	cmd.Flags().StringVarP(&o.Danger, "danger", "d", "",
		"Select a danger by id.")
}

// AddDangerFieldArgs registers the descriptive danger flags.
func AddDangerFieldArgs(cmd *cobra.Command, o *DangerOptions) {
	cmd.Flags().StringVar(&o.DangerType, "danger-type", "",
		"Danger archetype, e.g. 'ambitious organization'.")
	cmd.Flags().StringVar(&o.Impulse, "impulse", "",
		"What drives the danger.")
	cmd.Flags().StringVar(&o.Doom, "doom", "",
		"The impending doom should the danger run its course.")
}
