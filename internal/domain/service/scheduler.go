package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/jonboulle/clockwork"
)

// ScheduleConfig tells the scheduler when to announce the next pair.
type ScheduleConfig struct {
	NotificationTime string // HH:MM
	ActiveDays       []int  // ISO 8601 weekdays
	Location         *time.Location
}

type scheduler struct {
	duty     contract.DutyService
	notifier contract.Notifier
	clock    clockwork.Clock
	cfg      ScheduleConfig

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
	running  bool
}

func newScheduler(duty contract.DutyService, notifier contract.Notifier, clock clockwork.Clock, cfg ScheduleConfig) *scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.NotificationTime == "" {
		cfg.NotificationTime = domain.DefaultNotificationTime
	}
	if len(cfg.ActiveDays) == 0 {
		cfg.ActiveDays = domain.DefaultActiveDays
	}

	return &scheduler{
		duty:     duty,
		notifier: notifier,
		clock:    clock,
		cfg:      cfg,
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	slog.Info("Scheduler starting...")
	go s.mainLoop(s.stopChan, s.done)
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	slog.Info("Scheduler stopping...")
	close(s.stopChan)
	<-s.done
	s.running = false
}

func (s *scheduler) mainLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		now := s.clock.Now()
		nextTime, err := s.calculateNext(now)
		if err != nil {
			slog.Error("Scheduler disabled", "error", err)
			return
		}

		slog.Info("Next duty announcement scheduled", "at", nextTime.Format(time.RFC3339))

		timer := s.clock.NewTimer(nextTime.Sub(now))
		select {
		case <-timer.Chan():
			s.announce(context.Background())
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// announce advances the rotation and posts the new pair. A rotation that
// was never started is restarted instead.
func (s *scheduler) announce(ctx context.Context) (entity.Pair, error) {
	pair, err := s.duty.Advance(ctx)
	if errors.Is(err, domain.ErrNoCurrentAssignment) {
		slog.Info("No current duty pair, restarting rotation")
		pair, err = s.duty.Restart(ctx)
	}
	if err != nil {
		if reportErr := s.notifier.ReportFailure("announcement", err); reportErr != nil {
			slog.Error("Failed to report announcement failure", "error", reportErr)
		}
		return entity.Pair{}, err
	}

	if err := s.notifier.AnnouncePair(pair); err != nil {
		if reportErr := s.notifier.ReportFailure("announcement delivery", err); reportErr != nil {
			slog.Error("Failed to report delivery failure", "error", reportErr)
		}
		return pair, err
	}

	return pair, nil
}

// calculateNext returns the first configured weekday/time strictly after now.
func (s *scheduler) calculateNext(now time.Time) (time.Time, error) {
	notificationTime, err := time.Parse("15:04", s.cfg.NotificationTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid notification time %q: %w", s.cfg.NotificationTime, err)
	}

	activeDaysMap := make(map[int]bool)
	for _, day := range s.cfg.ActiveDays {
		activeDaysMap[day] = true
	}

	now = now.In(s.cfg.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(),
		notificationTime.Hour(), notificationTime.Minute(), 0, 0, s.cfg.Location)

	if activeDaysMap[isoWeekday(today)] && today.After(now) {
		return today, nil
	}

	// Find next active day
	for i := 1; i <= 7; i++ {
		nextDay := today.AddDate(0, 0, i)
		if activeDaysMap[isoWeekday(nextDay)] {
			return nextDay, nil
		}
	}

	return time.Time{}, fmt.Errorf("no valid active days in %v", s.cfg.ActiveDays)
}

// isoWeekday maps Go's Sunday=0 to ISO 8601 Sunday=7.
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return domain.Sunday
	}
	return weekday
}
