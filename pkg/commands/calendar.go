package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the meal calendar",
		Example: `
forkful calendar
forkful calendar --month 2026-09
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := calendar.Show{Month: co.Month, ShowID: io.ShowID, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	addCalendarDrop(cmd)
	addCalendarMove(cmd)

	topLevel.AddCommand(cmd)
}

func addCalendarDrop(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:   "drop <recipe-id> [date]",
		Short: "Place a queued meal on a calendar date",
		Example: `
forkful calendar drop 5ed6604591c37cdc054bc886 2026-09-03
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a recipe id")
			}
			if len(args) > 1 {
				co.Date = args[1]
			}
			if co.Date == "" {
				return errors.New("requires a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := calendar.Drop{RecipeID: args[0], Date: co.Date, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addCalendarMove(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:   "move <event-id> [date]",
		Short: "Move a calendar event to another date",
		Example: `
forkful calendar move 1756402800000 2026-09-05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event id")
			}
			if len(args) > 1 {
				co.Date = args[1]
			}
			if co.Date == "" {
				return errors.New("requires a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := calendar.Move{EventID: args[0], Date: co.Date, Title: co.Title, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, co)
	options.AddTitleArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
