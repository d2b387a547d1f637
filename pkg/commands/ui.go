package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based recipe browser",
		Example: `
forkful ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			i := ui.UI{Store: s}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
