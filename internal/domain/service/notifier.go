package service

import (
	"fmt"
	"log/slog"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/diegoclair/slack-duty-bot/internal/metrics"
	"github.com/slack-go/slack"
)

type notifier struct {
	slackClient contract.SlackClient
	channel     string
	adminID     string
}

func newNotifier(slackClient contract.SlackClient, channel, adminID string) *notifier {
	return &notifier{
		slackClient: slackClient,
		channel:     channel,
		adminID:     adminID,
	}
}

// AnnouncePair posts the newly selected pair to the announcement channel.
func (n *notifier) AnnouncePair(pair entity.Pair) error {
	_, _, err := n.slackClient.PostMessage(
		n.channel,
		slack.MsgOptionText(domain.FormatNextPair(pair), false),
		slack.MsgOptionAsUser(false),
	)
	metrics.NotificationsTotal.WithLabelValues("announcement", metrics.Status(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	slog.Info("Duty announcement sent", "channel", n.channel)
	return nil
}

// ReportFailure sends a direct message to the admin. Without an admin
// configured the failure is only logged.
func (n *notifier) ReportFailure(operation string, cause error) error {
	slog.Error("Duty operation failed", "operation", operation, "error", cause)
	if n.adminID == "" {
		return nil
	}

	_, _, err := n.slackClient.PostMessage(
		n.adminID,
		slack.MsgOptionText(domain.FormatFailure(operation, cause), false),
		slack.MsgOptionAsUser(false),
	)
	metrics.NotificationsTotal.WithLabelValues("failure", metrics.Status(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to notify admin: %w", err)
	}
	return nil
}
