package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

type statsRepo struct {
	db dbConn
}

func newStatsRepo(db dbConn) contract.StatsRepo {
	return &statsRepo{db: db}
}

func (r *statsRepo) Create(ctx context.Context, memberID int64) error {
	query := `INSERT OR IGNORE INTO member_stats (member_id) VALUES (?)`

	if _, err := r.db.ExecContext(ctx, query, memberID); err != nil {
		return fmt.Errorf("failed to create member stats: %w", err)
	}

	return nil
}

func (r *statsRepo) List(ctx context.Context) ([]entity.MemberStats, error) {
	query := `
		SELECT m.id, m.slack_user_id, m.name, st.served_count, st.mention_count
		FROM members m
		JOIN member_stats st ON st.member_id = m.id
		ORDER BY st.served_count DESC, m.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list member stats: %w", err)
	}
	defer rows.Close()

	var stats []entity.MemberStats
	for rows.Next() {
		var s entity.MemberStats
		if err := rows.Scan(&s.MemberID, &s.SlackUserID, &s.Name, &s.ServedCount, &s.MentionCount); err != nil {
			return nil, fmt.Errorf("failed to scan member stats: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepo) GetByMemberID(ctx context.Context, memberID int64) (*entity.MemberStats, error) {
	query := `
		SELECT m.id, m.slack_user_id, m.name, st.served_count, st.mention_count
		FROM members m
		JOIN member_stats st ON st.member_id = m.id
		WHERE m.id = ?
	`

	s := &entity.MemberStats{}
	err := r.db.QueryRowContext(ctx, query, memberID).Scan(
		&s.MemberID,
		&s.SlackUserID,
		&s.Name,
		&s.ServedCount,
		&s.MentionCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member stats: %w", err)
	}

	return s, nil
}

func (r *statsRepo) IncrementServedCount(ctx context.Context, memberIDs []int64) error {
	if len(memberIDs) == 0 {
		return nil
	}

	placeholders, args := inClause(memberIDs)
	query := `UPDATE member_stats SET served_count = served_count + 1 WHERE member_id IN (` + placeholders + `)`

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment served count: %w", err)
	}

	return nil
}

func (r *statsRepo) IncrementMentionCount(ctx context.Context, memberID int64) error {
	query := `UPDATE member_stats SET mention_count = mention_count + 1 WHERE member_id = ?`

	if _, err := r.db.ExecContext(ctx, query, memberID); err != nil {
		return fmt.Errorf("failed to increment mention count: %w", err)
	}

	return nil
}
