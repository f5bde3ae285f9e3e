package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/database"
	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/diegoclair/slack-duty-bot/migrator/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newDutyWithDB returns a duty service backed by an in-memory store seeded
// with the given members.
func newDutyWithDB(t *testing.T, rnd Randomizer, members ...entity.Member) (*dutyService, contract.DataManager) {
	t.Helper()

	dm := database.NewInstance(database.SetupTestDB(t))
	if len(members) > 0 {
		_, err := newRoster(dm, nil, 0).LoadRoster(context.Background(), members)
		require.NoError(t, err)
	}

	return newDuty(dm, rnd, 0), dm
}

func member(slackID, grade string) entity.Member {
	return entity.Member{SlackUserID: slackID, Name: "Member " + slackID, Grade: grade}
}

func slackIDs(pair entity.Pair) []string {
	return []string{pair.First.SlackUserID, pair.Second.SlackUserID}
}

// requireConsistent checks that exactly the given pair is on duty and that
// every member on duty has served in this loop.
func requireConsistent(t *testing.T, dm contract.DataManager, pair entity.Pair) []entity.RotationState {
	t.Helper()

	states, err := dm.Rotation().List(context.Background())
	require.NoError(t, err)

	var onDuty []string
	for _, state := range states {
		if state.OnDuty {
			onDuty = append(onDuty, state.Member.SlackUserID)
			require.True(t, state.DoneInLoop, "%s is on duty without being marked done", state.Member.SlackUserID)
		}
	}

	require.ElementsMatch(t, slackIDs(pair), onDuty)
	require.NotEqual(t, pair.First.SlackUserID, pair.Second.SlackUserID)
	return states
}

func doneCount(states []entity.RotationState) int {
	count := 0
	for _, state := range states {
		if state.DoneInLoop {
			count++
		}
	}
	return count
}

func Test_dutyService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return no assignment on a fresh roster", func(t *testing.T) {
		s, _ := newDutyWithDB(t, nil, member("U1", "1"), member("U2", "2"))

		_, err := s.Current(ctx)
		require.ErrorIs(t, err, domain.ErrNoCurrentAssignment)
	})

	t.Run("Should return the pair selected by restart", func(t *testing.T) {
		s, _ := newDutyWithDB(t, nil, member("U1", "1"), member("U2", "2"), member("U3", "1"))

		pair, err := s.Restart(ctx)
		require.NoError(t, err)

		current, err := s.Current(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, slackIDs(pair), slackIDs(current))
	})

	t.Run("Should not change anything", func(t *testing.T) {
		s, dm := newDutyWithDB(t, nil, member("U1", "1"), member("U2", "2"))

		pair, err := s.Restart(ctx)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := s.Current(ctx)
			require.NoError(t, err)
		}

		states := requireConsistent(t, dm, pair)
		assert.Equal(t, 2, doneCount(states))

		stats, err := dm.Stats().List(ctx)
		require.NoError(t, err)
		for _, st := range stats {
			assert.Zero(t, st.ServedCount)
		}
	})
}

func Test_dutyService_Advance(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return no assignment and write nothing when nobody is on duty", func(t *testing.T) {
		s, dm := newDutyWithDB(t, nil, member("U1", "1"), member("U2", "2"), member("U3", "1"))

		_, err := s.Advance(ctx)
		require.ErrorIs(t, err, domain.ErrNoCurrentAssignment)

		states, err := dm.Rotation().List(ctx)
		require.NoError(t, err)
		for _, state := range states {
			assert.False(t, state.OnDuty)
			assert.False(t, state.DoneInLoop)
		}
	})

	t.Run("Should pair the remaining members of different grades", func(t *testing.T) {
		// Scenario A: two grades of two members each.
		rnd := &fixedRand{picks: []int{0, 1, 0, 0}}
		s, dm := newDutyWithDB(t, rnd,
			member("UA", "1"), member("UB", "1"), member("UC", "2"), member("UD", "2"))

		first, err := s.Restart(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"UA", "UD"}, slackIDs(first))
		requireConsistent(t, dm, first)

		second, err := s.Advance(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"UB", "UC"}, slackIDs(second))
		assert.NotEqual(t, second.First.Grade, second.Second.Grade)

		states := requireConsistent(t, dm, second)
		assert.Equal(t, 4, doneCount(states))
	})

	t.Run("Should restart the loop when everyone has served", func(t *testing.T) {
		s, dm := newDutyWithDB(t, nil,
			member("UA", "1"), member("UB", "1"), member("UC", "2"), member("UD", "2"))

		_, err := s.Restart(ctx)
		require.NoError(t, err)
		_, err = s.Advance(ctx)
		require.NoError(t, err)

		third, err := s.Advance(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, third.First.Grade, third.Second.Grade)

		states := requireConsistent(t, dm, third)
		assert.Equal(t, 2, doneCount(states), "only the new pair is marked done after a restart")
	})

	t.Run("Should carry the straggler into the new loop", func(t *testing.T) {
		// Three members: after the first pair only one member is left.
		s, dm := newDutyWithDB(t, nil, member("UA", "1"), member("UB", "2"), member("UC", "1"))

		first, err := s.Restart(ctx)
		require.NoError(t, err)

		var straggler string
		for _, id := range []string{"UA", "UB", "UC"} {
			if !first.Contains(id) {
				straggler = id
			}
		}
		require.NotEmpty(t, straggler)

		second, err := s.Advance(ctx)
		require.NoError(t, err)
		assert.Equal(t, straggler, second.First.SlackUserID)
		assert.True(t, second.Contains(straggler))

		states := requireConsistent(t, dm, second)
		assert.Equal(t, 2, doneCount(states))
	})

	t.Run("Should increment the served count of the retiring pair", func(t *testing.T) {
		s, dm := newDutyWithDB(t, nil,
			member("UA", "1"), member("UB", "1"), member("UC", "2"), member("UD", "2"))

		retiring, err := s.Restart(ctx)
		require.NoError(t, err)

		_, err = s.Advance(ctx)
		require.NoError(t, err)

		stats, err := dm.Stats().List(ctx)
		require.NoError(t, err)
		for _, st := range stats {
			if retiring.Contains(st.SlackUserID) {
				assert.Equal(t, 1, st.ServedCount, st.SlackUserID)
			} else {
				assert.Zero(t, st.ServedCount, st.SlackUserID)
			}
		}
	})

	t.Run("Should cover every member exactly once per loop", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			rnd := rand.New(rand.NewPCG(seed, seed*7))
			s, dm := newDutyWithDB(t, rnd,
				member("U1", "1"), member("U2", "1"),
				member("U3", "2"), member("U4", "2"),
				member("U5", "3"), member("U6", "3"))

			served := map[string]int{}

			pair, err := s.Restart(ctx)
			require.NoError(t, err)
			for _, id := range slackIDs(pair) {
				served[id]++
			}

			for i := 0; i < 2; i++ {
				pair, err = s.Advance(ctx)
				require.NoError(t, err)
				states := requireConsistent(t, dm, pair)
				assert.Equal(t, 2*(i+2), doneCount(states), "seed %d", seed)
				for _, id := range slackIDs(pair) {
					served[id]++
				}
			}

			assert.Len(t, served, 6, "seed %d", seed)
			for id, count := range served {
				assert.Equal(t, 1, count, "seed %d member %s", seed, id)
			}

			// The fourth advance starts a new loop.
			pair, err = s.Advance(ctx)
			require.NoError(t, err)
			states := requireConsistent(t, dm, pair)
			assert.Equal(t, 2, doneCount(states), "seed %d", seed)
		}
	})

	t.Run("Should keep exactly one pair on duty across many advances", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(42, 1024))
		s, dm := newDutyWithDB(t, rnd,
			member("U1", "1"), member("U2", "2"), member("U3", "3"),
			member("U4", "1"), member("U5", "2"))

		pair, err := s.Restart(ctx)
		require.NoError(t, err)
		requireConsistent(t, dm, pair)

		for i := 0; i < 25; i++ {
			pair, err = s.Advance(ctx)
			require.NoError(t, err)
			requireConsistent(t, dm, pair)
		}
	})

	t.Run("Should serialize concurrent advances", func(t *testing.T) {
		db, err := database.New(filepath.Join(t.TempDir(), "duty.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		require.NoError(t, sqlite.Migrate(db.DB()))

		dm := database.NewInstance(db)
		_, err = newRoster(dm, nil, 0).LoadRoster(ctx, []entity.Member{
			member("U1", "1"), member("U2", "2"), member("U3", "3"), member("U4", "1"),
			member("U5", "2"), member("U6", "3"), member("U7", "1"),
		})
		require.NoError(t, err)

		s := newDuty(dm, rand.New(rand.NewPCG(7, 7)), time.Minute)
		_, err = s.Restart(ctx)
		require.NoError(t, err)

		const workers = 50
		errs := make(chan error, 2*workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := s.Advance(ctx)
				errs <- err
			}()
			go func() {
				defer wg.Done()
				pair, err := s.Current(ctx)
				if err == nil && pair.First.SlackUserID == pair.Second.SlackUserID {
					err = fmt.Errorf("pair with a single member: %s", pair.First.SlackUserID)
				}
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		pair, err := s.Current(ctx)
		require.NoError(t, err)
		requireConsistent(t, dm, pair)

		stats, err := dm.Stats().List(ctx)
		require.NoError(t, err)
		served := 0
		for _, st := range stats {
			served += st.ServedCount
		}
		assert.Equal(t, 2*workers, served)
	})
}

func Test_dutyService_Restart(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reset the loop and pick a fresh pair", func(t *testing.T) {
		s, dm := newDutyWithDB(t, nil,
			member("UA", "1"), member("UB", "1"), member("UC", "2"), member("UD", "2"))

		_, err := s.Restart(ctx)
		require.NoError(t, err)
		_, err = s.Advance(ctx)
		require.NoError(t, err)

		pair, err := s.Restart(ctx)
		require.NoError(t, err)

		states := requireConsistent(t, dm, pair)
		assert.Equal(t, 2, doneCount(states))
	})

	t.Run("Should fall back to the same grade when no other grade exists", func(t *testing.T) {
		// Scenario B
		s, dm := newDutyWithDB(t, nil, member("UA", "1"), member("UB", "1"))

		pair, err := s.Restart(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"UA", "UB"}, slackIDs(pair))
		requireConsistent(t, dm, pair)
	})

	t.Run("Should prefer a different grade when one exists", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			rnd := rand.New(rand.NewPCG(seed, seed+3))
			s, _ := newDutyWithDB(t, rnd,
				member("UA", "1"), member("UB", "1"), member("UC", "1"), member("UD", "2"))

			pair, err := s.Restart(ctx)
			require.NoError(t, err)
			assert.NotEqual(t, pair.First.Grade, pair.Second.Grade, "seed %d", seed)
			assert.True(t, pair.Contains("UD"), "seed %d", seed)
		}
	})

	t.Run("Should fail without changes when the roster has a single member", func(t *testing.T) {
		// Scenario E
		s, dm := newDutyWithDB(t, nil, member("UA", "1"))

		_, err := s.Restart(ctx)
		require.ErrorIs(t, err, domain.ErrNoEligiblePair)

		states, err := dm.Rotation().List(ctx)
		require.NoError(t, err)
		require.Len(t, states, 1)
		assert.False(t, states[0].OnDuty)
		assert.False(t, states[0].DoneInLoop)
	})

	t.Run("Should fail on an empty roster", func(t *testing.T) {
		s, _ := newDutyWithDB(t, nil)

		_, err := s.Restart(ctx)
		require.ErrorIs(t, err, domain.ErrNoEligiblePair)
	})
}

func Test_dutyService_RecordMention(t *testing.T) {
	ctx := context.Background()

	t.Run("Should count mentions of roster members", func(t *testing.T) {
		s, dm := newDutyWithDB(t, nil, member("UA", "1"), member("UB", "2"))

		require.NoError(t, s.RecordMention(ctx, "UA"))
		require.NoError(t, s.RecordMention(ctx, "UA"))

		m, err := dm.Member().GetBySlackID(ctx, "UA")
		require.NoError(t, err)
		stats, err := dm.Stats().GetByMemberID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.MentionCount)
	})

	t.Run("Should ignore users outside the roster", func(t *testing.T) {
		s, _ := newDutyWithDB(t, nil, member("UA", "1"))

		require.NoError(t, s.RecordMention(ctx, "U_UNKNOWN"))
	})
}

func Test_dutyService_StoreFailures(t *testing.T) {
	ctx := context.Background()

	pair := entity.Pair{
		First:  entity.Member{ID: 1, SlackUserID: "UA", Grade: "1"},
		Second: entity.Member{ID: 2, SlackUserID: "UB", Grade: "2"},
	}

	tests := []struct {
		name      string
		call      func(s *dutyService) error
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should wrap a read failure of current",
			call: func(s *dutyService) error {
				_, err := s.Current(ctx)
				return err
			},
			buildMock: func(mocks allMocks) {
				mocks.mockRotationRepo.EXPECT().ListOnDuty(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "Should wrap a write failure during advance",
			call: func(s *dutyService) error {
				_, err := s.Advance(ctx)
				return err
			},
			buildMock: func(mocks allMocks) {
				mocks.expectTransaction()
				mocks.mockRotationRepo.EXPECT().ListOnDuty(gomock.Any()).Return(pair.Members(), nil).Times(1)
				mocks.mockStatsRepo.EXPECT().IncrementServedCount(gomock.Any(), pair.IDs()).Return(nil).Times(1)
				mocks.mockRotationRepo.EXPECT().SetOnDuty(gomock.Any(), pair.IDs(), false).Return(assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "Should pass through no assignment during advance",
			call: func(s *dutyService) error {
				_, err := s.Advance(ctx)
				return err
			},
			buildMock: func(mocks allMocks) {
				mocks.expectTransaction()
				mocks.mockRotationRepo.EXPECT().ListOnDuty(gomock.Any()).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNoCurrentAssignment,
		},
		{
			name: "Should wrap a roster read failure during restart",
			call: func(s *dutyService) error {
				_, err := s.Restart(ctx)
				return err
			},
			buildMock: func(mocks allMocks) {
				mocks.expectTransaction()
				mocks.mockMemberRepo.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "Should wrap a commit failure during restart",
			call: func(s *dutyService) error {
				_, err := s.Restart(ctx)
				return err
			},
			buildMock: func(mocks allMocks) {
				mocks.mockDataManager.EXPECT().
					WithTransaction(gomock.Any(), gomock.Any()).
					Return(assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "Should wrap a lookup failure when recording a mention",
			call: func(s *dutyService) error {
				return s.RecordMention(ctx, "UA")
			},
			buildMock: func(mocks allMocks) {
				mocks.mockMemberRepo.EXPECT().GetBySlackID(gomock.Any(), "UA").Return(nil, assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newDuty(m.mockDataManager, &fixedRand{}, 0)
			err := tt.call(s)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_dutyService_choosePair(t *testing.T) {
	a := entity.Member{ID: 1, SlackUserID: "UA", Grade: "1"}
	b := entity.Member{ID: 2, SlackUserID: "UB", Grade: "1"}
	c := entity.Member{ID: 3, SlackUserID: "UC", Grade: "2"}

	tests := []struct {
		name    string
		pool    []entity.Member
		first   *entity.Member
		picks   []int
		want    []string
		wantErr error
	}{
		{
			name:  "Should pick a partner of another grade",
			pool:  []entity.Member{a, b, c},
			picks: []int{0, 0},
			want:  []string{"UA", "UC"},
		},
		{
			name:  "Should keep the forced first member",
			pool:  []entity.Member{a, b, c},
			first: &c,
			picks: []int{1},
			want:  []string{"UC", "UB"},
		},
		{
			name:  "Should fall back to the same grade",
			pool:  []entity.Member{a, b},
			picks: []int{1, 0},
			want:  []string{"UB", "UA"},
		},
		{
			name:    "Should fail with a single member pool",
			pool:    []entity.Member{a},
			wantErr: domain.ErrNoEligiblePair,
		},
		{
			name:    "Should fail when the forced member is alone",
			pool:    []entity.Member{a},
			first:   &a,
			wantErr: domain.ErrNoEligiblePair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newDuty(nil, &fixedRand{picks: tt.picks}, 0)

			pair, err := s.choosePair(tt.pool, tt.first)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, slackIDs(pair))
		})
	}
}
