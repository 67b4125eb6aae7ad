// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FrontOptions captures front selection flags for commands.
type FrontOptions struct {
	Front string
	Type  string
}

// AddFrontArgs wires the front selection flag on the provided command.
func AddFrontArgs(cmd *cobra.Command, o *FrontOptions) {
	cmd.Flags().StringVarP(&o.Front, "front", "f", "",
		"Select a front by name or id.")
}

// AddTypeArg registers the campaign/adventure type flag.
func AddTypeArg(cmd *cobra.Command, o *FrontOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Front type, one of 'campaign' or 'adventure'.")
}
