package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	so := &options.ServingOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "show <recipe-id>",
		Short: "Show a recipe",
		Example: `
forkful show 5ed6604591c37cdc054bc886
forkful show 5ed6604591c37cdc054bc886 --servings 8
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a recipe id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := show.Show{
				ID:       args[0],
				Servings: so.Servings,
				HTML:     ro.HTML,
				ShowID:   io.ShowID,
				Store:    s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddServingsArgs(cmd, so)
	options.AddHTMLArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
