package options

import (
	"github.com/spf13/cobra"
)

// PagingOptions captures search result pagination flags.
type PagingOptions struct {
	Page int
}

func AddPageArgs(cmd *cobra.Command, o *PagingOptions) {
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Specify the results page to show.")
}
