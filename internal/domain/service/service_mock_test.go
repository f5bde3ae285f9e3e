package service

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockMemberRepo   *mocks.MockMemberRepo
	mockRotationRepo *mocks.MockRotationRepo
	mockStatsRepo    *mocks.MockStatsRepo
	mockSlackClient  *mocks.MockSlackClient
	mockDutyService  *mocks.MockDutyService
	mockNotifier     *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	rotationRepo := mocks.NewMockRotationRepo(ctrl)
	dm.EXPECT().Rotation().Return(rotationRepo).AnyTimes()

	statsRepo := mocks.NewMockStatsRepo(ctrl)
	dm.EXPECT().Stats().Return(statsRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockMemberRepo:   memberRepo,
		mockRotationRepo: rotationRepo,
		mockStatsRepo:    statsRepo,
		mockSlackClient:  slackClient,
		mockDutyService:  mocks.NewMockDutyService(ctrl),
		mockNotifier:     mocks.NewMockNotifier(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, slackClient, Config{})
	require.NotNil(t, instance.Duty)
	require.NotNil(t, instance.Roster)

	return
}

// expectTransaction runs the transaction callback against the same mocked
// DataManager and returns whatever the callback returns.
func (m allMocks) expectTransaction() {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
}

// fixedRand returns the queued indexes in order, clamped to n-1.
type fixedRand struct {
	picks []int
}

func (r *fixedRand) IntN(n int) int {
	if len(r.picks) == 0 {
		return 0
	}
	pick := r.picks[0]
	r.picks = r.picks[1:]
	if pick >= n {
		return n - 1
	}
	return pick
}
