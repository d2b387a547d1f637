package options

import (
	"github.com/spf13/cobra"
)

// RenderOptions
type RenderOptions struct {
	HTML bool
}

func AddHTMLArgs(cmd *cobra.Command, o *RenderOptions) {
	cmd.Flags().BoolVar(&o.HTML, "html", false,
		"Print rendered view markup instead of text.")
}
