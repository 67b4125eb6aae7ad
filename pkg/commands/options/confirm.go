package options

import (
	"github.com/spf13/cobra"
)

// ConfirmOptions holds the skip-confirmation flag for destructive commands.
type ConfirmOptions struct {
	Yes bool
}

func AddYesArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Delete without asking for confirmation.")
}
