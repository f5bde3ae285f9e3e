package metrics

import (
	"errors"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Duty rotation metrics
var (
	// DutyOperationsTotal tracks engine operations by operation and result
	DutyOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duty_operations_total",
			Help: "Total duty rotation operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// LoopRestartsTotal tracks rotation loop restarts by reason (manual/exhausted/straggler)
	LoopRestartsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duty_loop_restarts_total",
			Help: "Total rotation loop restarts by reason",
		},
		[]string{"reason"},
	)

	// GradeFallbacksTotal counts pairs chosen without grade diversity
	GradeFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "duty_grade_fallbacks_total",
			Help: "Total duty pairs selected from the same grade",
		},
	)
)

// Slack metrics
var (
	// SlackCommandsTotal tracks slash commands by command name
	SlackCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_commands_total",
			Help: "Total Slack slash commands by command",
		},
		[]string{"command"},
	)

	// SlackEventsTotal tracks Events API callbacks by event type
	SlackEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_events_total",
			Help: "Total Slack events received by type",
		},
		[]string{"type"},
	)

	// NotificationsTotal tracks outbound Slack messages by kind and status
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_notifications_total",
			Help: "Total outbound Slack notifications by kind and status",
		},
		[]string{"kind", "status"},
	)
)

// ObserveDutyOperation records the outcome of a rotation engine call.
func ObserveDutyOperation(operation string, err error) {
	DutyOperationsTotal.WithLabelValues(operation, Result(err)).Inc()
}

// Result maps an engine error to a bounded label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNoCurrentAssignment):
		return "no_assignment"
	case errors.Is(err, domain.ErrNoEligiblePair):
		return "no_pair"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "error"
	}
}

// Status returns "success" or "failure" for err.
func Status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
