package cmd

import (
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/config"
	"github.com/diegoclair/slack-duty-bot/internal/database"
	"github.com/diegoclair/slack-duty-bot/internal/domain/service"
	"github.com/diegoclair/slack-duty-bot/internal/logging"
	"github.com/diegoclair/slack-duty-bot/migrator/sqlite"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "duty-bot",
	Short:         "🧹 Cleaning duty rotation bot for Slack",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Init(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(dutyCmd)
}

// openStore opens the database and brings the schema up to date.
func openStore() (*database.DB, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func newServices(db *database.DB, slackClient *slack.Client) (*service.Instance, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return service.NewInstance(database.NewInstance(db), slackClient, service.Config{
		AnnounceChannel: cfg.AnnounceChannel,
		AdminSlackID:    cfg.AdminSlackID,
		StoreTimeout:    cfg.StoreTimeout,
		Schedule: service.ScheduleConfig{
			NotificationTime: cfg.NotificationTime,
			ActiveDays:       cfg.ActiveDays,
			Location:         loc,
		},
	}), nil
}
