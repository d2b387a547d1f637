package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.PagingOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for recipes",
		Example: `
forkful search pizza
forkful search pizza --page 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a search query")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := search.Search{
				Query:  strings.Join(args, " "),
				Page:   po.Page,
				HTML:   ro.HTML,
				ShowID: io.ShowID,
				Store:  s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	options.AddHTMLArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
