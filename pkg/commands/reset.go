package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:    "reset [collection]",
		Hidden: true,
		Short:  "Erase persisted collections",
		Long: `Erase one persisted collection, or all of them.

Collections: bookmarks, ingredients, schedules, events.
`,
		ValidArgs: []string{store.KeyBookmarks, store.KeyIngredients, store.KeySchedules, store.KeyEvents},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			keys := []string{store.KeyBookmarks, store.KeyIngredients, store.KeySchedules, store.KeyEvents}
			if len(args) == 1 {
				keys = args
			}
			for _, k := range keys {
				if err := s.ClearStorage(k); err != nil {
					return oo.HandleError(err)
				}
				fmt.Printf("cleared %s\n", k)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
