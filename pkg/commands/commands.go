package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/forkful/pkg/api"
	"tableflip.dev/forkful/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "forkful",
		Short: base.Wrap80("Search, bookmark, scale and plan recipes on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSearch(topLevel)
	addShow(topLevel)
	addBookmark(topLevel)
	addShopping(topLevel)
	addSchedule(topLevel)
	addCalendar(topLevel)
	addUpload(topLevel)
	addReset(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// newStore loads config, opens persistence, and restores saved state.
func newStore() (*store.Store, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	db, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.APIKey())
	if u := cfg.APIURL(); u != "" {
		client.BaseURL = u
	}
	if d := cfg.APITimeout(); d > 0 {
		client.Timeout = d
	}

	s := store.New(client, db)
	s.Init()
	return s, nil
}
