//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

// DutyService is the duty rotation engine.
type DutyService interface {
	Current(ctx context.Context) (entity.Pair, error)
	Advance(ctx context.Context) (entity.Pair, error)
	Restart(ctx context.Context) (entity.Pair, error)
	RecordMention(ctx context.Context, slackUserID string) error
}

// RosterService administers the members taking part in the rotation.
type RosterService interface {
	AddMember(ctx context.Context, member entity.Member) (*entity.Member, error)
	RemoveMember(ctx context.Context, slackUserID string) error
	ListMembers(ctx context.Context) ([]entity.RotationState, error)
	LoadRoster(ctx context.Context, members []entity.Member) (int, error)
	GetStats(ctx context.Context, slackUserID string) ([]entity.MemberStats, error)
}

// Notifier delivers duty announcements to Slack.
type Notifier interface {
	AnnouncePair(pair entity.Pair) error
	ReportFailure(operation string, err error) error
}
