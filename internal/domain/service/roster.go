package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

type rosterService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	timeout     time.Duration
}

func newRoster(dm contract.DataManager, slackClient contract.SlackClient, timeout time.Duration) *rosterService {
	return &rosterService{
		dm:          dm,
		slackClient: slackClient,
		timeout:     timeout,
	}
}

func (s *rosterService) AddMember(ctx context.Context, member entity.Member) (*entity.Member, error) {
	member.SlackUserID = strings.TrimSpace(member.SlackUserID)
	member.Grade = strings.TrimSpace(member.Grade)
	if member.SlackUserID == "" {
		return nil, fmt.Errorf("slack user id is required")
	}
	if member.Grade == "" {
		return nil, fmt.Errorf("grade is required")
	}

	if member.Name == "" {
		name, err := s.lookupName(member.SlackUserID)
		if err != nil {
			return nil, err
		}
		member.Name = name
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Member().GetBySlackID(ctx, member.SlackUserID)
		if err != nil {
			return fmt.Errorf("failed to check existing member: %w", err)
		}
		if existing != nil {
			return domain.ErrMemberExists
		}

		return provision(ctx, tx, &member)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Member added to roster", "slack_user_id", member.SlackUserID, "grade", member.Grade)
	return &member, nil
}

// RemoveMember deletes a member from the roster. When the member is on duty
// the partner is relieved too, leaving the rotation without a current pair
// until it is restarted.
func (s *rosterService) RemoveMember(ctx context.Context, slackUserID string) error {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().GetBySlackID(ctx, slackUserID)
		if err != nil {
			return fmt.Errorf("failed to find member: %w", err)
		}
		if member == nil {
			return domain.ErrMemberNotFound
		}

		onDuty, err := tx.Rotation().ListOnDuty(ctx)
		if err != nil {
			return fmt.Errorf("failed to list members on duty: %w", err)
		}

		if err := tx.Member().Delete(ctx, member.ID); err != nil {
			return err
		}

		var partners []int64
		for _, m := range onDuty {
			if m.ID != member.ID {
				partners = append(partners, m.ID)
			}
		}
		if len(partners) > 0 && len(partners) < len(onDuty) {
			if err := tx.Rotation().SetOnDuty(ctx, partners, false); err != nil {
				return err
			}
			slog.Warn("Removed member was on duty, rotation needs a restart", "slack_user_id", slackUserID)
		}

		slog.Info("Member removed from roster", "slack_user_id", slackUserID)
		return nil
	})
}

func (s *rosterService) ListMembers(ctx context.Context) ([]entity.RotationState, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	return s.dm.Rotation().List(ctx)
}

// LoadRoster creates missing members and refreshes the name, kana and grade of
// existing ones. Rotation progress of existing members is kept.
func (s *rosterService) LoadRoster(ctx context.Context, members []entity.Member) (int, error) {
	created := 0

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		created = 0
		for _, m := range members {
			existing, err := tx.Member().GetBySlackID(ctx, m.SlackUserID)
			if err != nil {
				return fmt.Errorf("failed to check member %s: %w", m.SlackUserID, err)
			}

			if existing == nil {
				member := m
				if err := provision(ctx, tx, &member); err != nil {
					return err
				}
				created++
				continue
			}

			existing.Name = m.Name
			existing.Kana = m.Kana
			existing.Grade = m.Grade
			if err := tx.Member().Update(ctx, existing); err != nil {
				return err
			}
			if err := ensureRows(ctx, tx, existing.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Roster loaded", "members", len(members), "created", created)
	return created, nil
}

// GetStats returns the counters of one member, or of everyone when
// slackUserID is empty.
func (s *rosterService) GetStats(ctx context.Context, slackUserID string) ([]entity.MemberStats, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	if slackUserID == "" {
		return s.dm.Stats().List(ctx)
	}

	member, err := s.dm.Member().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	if member == nil {
		return nil, domain.ErrMemberNotFound
	}

	stats, err := s.dm.Stats().GetByMemberID(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, domain.ErrMemberNotFound
	}

	return []entity.MemberStats{*stats}, nil
}

func (s *rosterService) lookupName(slackUserID string) (string, error) {
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		slog.Error("Failed to get user info from Slack", "slack_user_id", slackUserID, "error", err)
		return "", fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	name := userInfo.Profile.RealName
	if name == "" {
		name = userInfo.Profile.DisplayName
	}
	if name == "" {
		name = userInfo.Name
	}
	return name, nil
}

// provision creates the member with its rotation state and stats rows.
func provision(ctx context.Context, tx contract.DataManager, member *entity.Member) error {
	if err := tx.Member().Create(ctx, member); err != nil {
		return err
	}
	return ensureRows(ctx, tx, member.ID)
}

func ensureRows(ctx context.Context, tx contract.DataManager, memberID int64) error {
	if err := tx.Rotation().Create(ctx, memberID); err != nil {
		return err
	}
	return tx.Stats().Create(ctx, memberID)
}
