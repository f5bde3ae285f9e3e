package cmd

import (
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/roster"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the duty roster",
}

var rosterLoadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Create or update members from a roster YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.RosterPath
		if len(args) == 1 {
			path = args[0]
		}

		members, err := roster.Load(path)
		if err != nil {
			return err
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		svc, err := newServices(db, slack.New(cfg.SlackBotToken))
		if err != nil {
			return err
		}

		created, err := svc.Roster.LoadRoster(cmd.Context(), members)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d members (%d new) from %s\n", len(members), created, path)
		return nil
	},
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every member with their rotation flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		svc, err := newServices(db, slack.New(cfg.SlackBotToken))
		if err != nil {
			return err
		}

		states, err := svc.Roster.ListMembers(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), domain.FormatRoster(states))
		return nil
	},
}

func init() {
	rosterCmd.AddCommand(rosterLoadCmd)
	rosterCmd.AddCommand(rosterListCmd)
}
