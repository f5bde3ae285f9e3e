package service

import (
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/jonboulle/clockwork"
)

// Config carries the settings the services need from the environment.
type Config struct {
	AnnounceChannel string
	AdminSlackID    string
	StoreTimeout    time.Duration
	Schedule        ScheduleConfig

	// Rand and Clock are replaced in tests.
	Rand  Randomizer
	Clock clockwork.Clock
}

type Instance struct {
	Duty      *dutyService
	Roster    *rosterService
	Notifier  *notifier
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, cfg Config) *Instance {
	dutyService := newDuty(dm, cfg.Rand, cfg.StoreTimeout)
	notifier := newNotifier(slackClient, cfg.AnnounceChannel, cfg.AdminSlackID)

	return &Instance{
		Duty:      dutyService,
		Roster:    newRoster(dm, slackClient, cfg.StoreTimeout),
		Notifier:  notifier,
		Scheduler: newScheduler(dutyService, notifier, cfg.Clock, cfg.Schedule),
	}
}
