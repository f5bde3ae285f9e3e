//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Member() MemberRepo
	Rotation() RotationRepo
	Stats() StatsRepo
}

// MemberRepo defines the contract for the roster repository
type MemberRepo interface {
	Create(ctx context.Context, member *entity.Member) error
	Update(ctx context.Context, member *entity.Member) error
	GetBySlackID(ctx context.Context, slackUserID string) (*entity.Member, error)
	List(ctx context.Context) ([]entity.Member, error)
	Delete(ctx context.Context, memberID int64) error
}

// RotationRepo defines the contract for the rotation state repository
type RotationRepo interface {
	Create(ctx context.Context, memberID int64) error
	List(ctx context.Context) ([]entity.RotationState, error)
	ListOnDuty(ctx context.Context) ([]entity.Member, error)
	SetOnDuty(ctx context.Context, memberIDs []int64, value bool) error
	SetDoneInLoop(ctx context.Context, memberIDs []int64, value bool) error
}

// StatsRepo defines the contract for the member statistics repository
type StatsRepo interface {
	Create(ctx context.Context, memberID int64) error
	List(ctx context.Context) ([]entity.MemberStats, error)
	GetByMemberID(ctx context.Context, memberID int64) (*entity.MemberStats, error)
	IncrementServedCount(ctx context.Context, memberIDs []int64) error
	IncrementMentionCount(ctx context.Context, memberID int64) error
}
