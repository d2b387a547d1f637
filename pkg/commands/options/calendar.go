// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CalendarOptions captures common calendar selection flags for commands.
type CalendarOptions struct {
	Month string
	Date  string
	Title string
}

// AddMonthArgs wires the month selection flag on the provided command.
func AddMonthArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		"Specify the month to show, as YYYY-MM. Defaults to the current month.")
}

func AddDateArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Specify the date, as YYYY-MM-DD.")
}

func AddTitleArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Replace the event title.")
}
