package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/bookmark"
)

func addBookmark(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bookmarks"},
		Short:   "Manage bookmarked recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBookmarkAdd(cmd)
	addBookmarkDelete(cmd)
	addBookmarkList(cmd)

	topLevel.AddCommand(cmd)
}

func addBookmarkAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <recipe-id>",
		Short: "Bookmark a recipe",
		Example: `
forkful bookmark add 5ed6604591c37cdc054bc886
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
			r := bookmark.Add{ID: args[0], ShowID: io.ShowID, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addBookmarkDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <recipe-id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Remove a bookmark",
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
			r := bookmark.Delete{ID: args[0], ShowID: io.ShowID, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addBookmarkList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bookmarked recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := bookmark.List{ShowID: io.ShowID, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
