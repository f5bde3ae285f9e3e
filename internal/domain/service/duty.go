package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/diegoclair/slack-duty-bot/internal/metrics"
)

// Randomizer returns a uniformly distributed int in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

const (
	restartManual    = "manual"
	restartExhausted = "exhausted"
	restartStraggler = "straggler"
)

type dutyService struct {
	dm      contract.DataManager
	rand    Randomizer
	timeout time.Duration

	// mu serializes every read-modify-write of the rotation state. The random
	// source is only used while holding the write lock.
	mu sync.RWMutex
}

func newDuty(dm contract.DataManager, rnd Randomizer, timeout time.Duration) *dutyService {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &dutyService{
		dm:      dm,
		rand:    rnd,
		timeout: timeout,
	}
}

// Current returns the pair currently on duty without changing anything.
func (s *dutyService) Current(ctx context.Context) (pair entity.Pair, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defer func() { metrics.ObserveDutyOperation("current", err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pair, err = currentPair(ctx, s.dm)
	return pair, storeErr(err)
}

// Advance retires the current pair and selects the next one, restarting the
// loop when it is exhausted or when a single member is left.
func (s *dutyService) Advance(ctx context.Context) (pair entity.Pair, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { metrics.ObserveDutyOperation("advance", err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var restartReason string
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		retiring, err := currentPair(ctx, tx)
		if err != nil {
			return err
		}

		if err := tx.Stats().IncrementServedCount(ctx, retiring.IDs()); err != nil {
			return err
		}

		if err := tx.Rotation().SetOnDuty(ctx, retiring.IDs(), false); err != nil {
			return err
		}

		states, err := tx.Rotation().List(ctx)
		if err != nil {
			return err
		}

		var candidates []entity.Member
		for _, state := range states {
			if !state.DoneInLoop {
				candidates = append(candidates, state.Member)
			}
		}

		switch len(candidates) {
		case 0:
			restartReason = restartExhausted
			pair, err = s.restartLoop(ctx, tx, nil)
		case 1:
			restartReason = restartStraggler
			straggler := candidates[0]
			pair, err = s.restartLoop(ctx, tx, &straggler)
		default:
			pair, err = s.choosePair(candidates, nil)
			if err != nil {
				return err
			}
			err = assign(ctx, tx, pair)
		}
		return err
	})
	if err != nil {
		return entity.Pair{}, storeErr(err)
	}

	if restartReason != "" {
		metrics.LoopRestartsTotal.WithLabelValues(restartReason).Inc()
		slog.Info("Rotation loop restarted", "reason", restartReason)
	}
	logPair("Duty rotation advanced", pair)

	return pair, nil
}

// Restart resets the loop for every member and selects a fresh pair.
func (s *dutyService) Restart(ctx context.Context) (pair entity.Pair, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { metrics.ObserveDutyOperation("restart", err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		pair, err = s.restartLoop(ctx, tx, nil)
		return err
	})
	if err != nil {
		return entity.Pair{}, storeErr(err)
	}

	metrics.LoopRestartsTotal.WithLabelValues(restartManual).Inc()
	logPair("Duty rotation restarted", pair)

	return pair, nil
}

// RecordMention counts an interaction of a roster member with the bot.
// Users outside the roster are ignored.
func (s *dutyService) RecordMention(ctx context.Context, slackUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	member, err := s.dm.Member().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return domain.StoreUnavailable(err)
	}
	if member == nil {
		return nil
	}

	if err := s.dm.Stats().IncrementMentionCount(ctx, member.ID); err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

// restartLoop clears both flags for everyone and picks a new pair. When
// partner is set it is always the first member of the new pair.
func (s *dutyService) restartLoop(ctx context.Context, tx contract.DataManager, partner *entity.Member) (entity.Pair, error) {
	members, err := tx.Member().List(ctx)
	if err != nil {
		return entity.Pair{}, err
	}

	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}

	// on_duty goes first: the schema rejects on_duty without done_in_loop.
	if err := tx.Rotation().SetOnDuty(ctx, ids, false); err != nil {
		return entity.Pair{}, err
	}
	if err := tx.Rotation().SetDoneInLoop(ctx, ids, false); err != nil {
		return entity.Pair{}, err
	}

	pair, err := s.choosePair(members, partner)
	if err != nil {
		return entity.Pair{}, err
	}

	return pair, assign(ctx, tx, pair)
}

// choosePair picks the first member (unless forced) and a second one of a
// different grade, falling back to any other member of the pool.
func (s *dutyService) choosePair(pool []entity.Member, first *entity.Member) (entity.Pair, error) {
	if first == nil {
		if len(pool) < 2 {
			return entity.Pair{}, domain.ErrNoEligiblePair
		}
		first = &pool[s.rand.IntN(len(pool))]
	}

	candidates := filterMembers(pool, func(m entity.Member) bool {
		return m.Grade != first.Grade
	})
	if len(candidates) == 0 {
		candidates = filterMembers(pool, func(m entity.Member) bool {
			return m.ID != first.ID
		})
		if len(candidates) > 0 {
			metrics.GradeFallbacksTotal.Inc()
		}
	}
	if len(candidates) == 0 {
		return entity.Pair{}, domain.ErrNoEligiblePair
	}

	return entity.Pair{
		First:  *first,
		Second: candidates[s.rand.IntN(len(candidates))],
	}, nil
}

func (s *dutyService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withStoreTimeout(ctx, s.timeout)
}

// withStoreTimeout bounds a store operation. A zero timeout disables it.
func withStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func currentPair(ctx context.Context, dm contract.DataManager) (entity.Pair, error) {
	members, err := dm.Rotation().ListOnDuty(ctx)
	if err != nil {
		return entity.Pair{}, err
	}

	if len(members) != 2 {
		if len(members) != 0 {
			slog.Warn("Unexpected number of members on duty", "count", len(members))
		}
		return entity.Pair{}, domain.ErrNoCurrentAssignment
	}

	return entity.Pair{First: members[0], Second: members[1]}, nil
}

// assign marks both members as served in this loop, then as on duty.
func assign(ctx context.Context, tx contract.DataManager, pair entity.Pair) error {
	if err := tx.Rotation().SetDoneInLoop(ctx, pair.IDs(), true); err != nil {
		return err
	}
	return tx.Rotation().SetOnDuty(ctx, pair.IDs(), true)
}

func filterMembers(members []entity.Member, keep func(entity.Member) bool) []entity.Member {
	var out []entity.Member
	for _, m := range members {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// storeErr passes rotation outcomes through and marks everything else as a
// persistence failure.
func storeErr(err error) error {
	if err == nil ||
		errors.Is(err, domain.ErrNoCurrentAssignment) ||
		errors.Is(err, domain.ErrNoEligiblePair) {
		return err
	}
	return domain.StoreUnavailable(err)
}

func logPair(msg string, pair entity.Pair) {
	slog.Info(msg,
		"first", pair.First.SlackUserID,
		"first_grade", pair.First.Grade,
		"second", pair.Second.SlackUserID,
		"second_grade", pair.Second.Grade,
	)
}
