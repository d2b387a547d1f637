package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"schedules", "meals"},
		Short:   "Manage meals queued for the calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addScheduleAdd(cmd)
	addScheduleDelete(cmd)
	addScheduleClear(cmd)
	addScheduleList(cmd)

	topLevel.AddCommand(cmd)
}

func addScheduleAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <recipe-id>",
		Short: "Queue a recipe as a meal to plan",
		Example: `
forkful schedule add 5ed6604591c37cdc054bc886
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
			r := schedule.Add{ID: args[0], ShowID: io.ShowID, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addScheduleDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <recipe-id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Remove a queued meal",
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
			r := schedule.Delete{ID: args[0], ShowID: io.ShowID, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addScheduleClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all queued meals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := schedule.Clear{Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addScheduleList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List queued meals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}
			r := schedule.List{ShowID: io.ShowID, HTML: ro.HTML, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddHTMLArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
