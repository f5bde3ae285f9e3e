package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/handlers"
	"github.com/diegoclair/slack-duty-bot/internal/server"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Slack bot, the HTTP API and the weekly scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateServer(); err != nil {
			return err
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		slackClient := slack.New(cfg.SlackBotToken)

		svc, err := newServices(db, slackClient)
		if err != nil {
			return err
		}

		var botUserID string
		if auth, err := slackClient.AuthTest(); err != nil {
			slog.Warn("Could not resolve bot user id, mentions will be answered as messages too", "error", err)
		} else {
			botUserID = auth.UserID
		}

		slackHandler := handlers.New(slackClient, svc.Duty, svc.Roster, handlers.Config{
			SigningSecret:     cfg.SlackSigningSecret,
			AdminSlackID:      cfg.AdminSlackID,
			BotUserID:         botUserID,
			RosterPath:        cfg.RosterPath,
			DutyKeywords:      cfg.DutyKeywords,
			CompletedKeywords: cfg.CompletedKeywords,
		})
		apiHandler := handlers.NewAPI(svc.Duty, svc.Roster, svc.Notifier, cfg.AdminSlackID, cfg.RosterPath)

		if cfg.SchedulerEnabled {
			svc.Scheduler.Start()
			defer svc.Scheduler.Stop()
		}

		srv := server.NewServer(cfg.Port, slackHandler, apiHandler)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			slog.Info("Shutting down", "signal", sig.String())
		case err := <-errCh:
			if err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
