package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/shopping"
)

func addShopping(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Manage the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addShoppingAdd(cmd)
	addShoppingDelete(cmd)
	addShoppingClear(cmd)
	addShoppingList(cmd)

	topLevel.AddCommand(cmd)
}

func addShoppingAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <recipe-id>",
		Short: "Add a recipe's ingredients to the shopping list",
		Example: `
forkful shopping add 5ed6604591c37cdc054bc886
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
			r := shopping.Add{RecipeID: args[0], Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addShoppingDelete(topLevel *cobra.Command) {
	count := 1

	cmd := &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"delete", "remove"},
		Short:   "Remove ingredients from the shopping list by index",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an ingredient index")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])
			r := shopping.Delete{Index: index, Count: count, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1,
		"Number of consecutive ingredients to remove.")

	topLevel.AddCommand(cmd)
}

func addShoppingClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove everything from the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := shopping.Clear{Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addShoppingList(topLevel *cobra.Command) {
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := shopping.List{HTML: ro.HTML, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddHTMLArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
