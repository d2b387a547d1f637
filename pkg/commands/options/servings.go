package options

import (
	"github.com/spf13/cobra"
)

// ServingOptions
type ServingOptions struct {
	Servings int
}

func AddServingsArgs(cmd *cobra.Command, o *ServingOptions) {
	cmd.Flags().IntVar(&o.Servings, "servings", 0,
		"Scale ingredient quantities to this many servings.")
}
