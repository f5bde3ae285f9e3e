package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

const memberColumns = `m.id, m.slack_user_id, m.name, m.kana, m.grade, m.created_at`

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *entity.Member) error {
	query := `
		INSERT INTO members (slack_user_id, name, kana, grade)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		member.SlackUserID,
		member.Name,
		member.Kana,
		member.Grade,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *memberRepo) Update(ctx context.Context, member *entity.Member) error {
	query := `UPDATE members SET name = ?, kana = ?, grade = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, member.Name, member.Kana, member.Grade, member.ID)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return nil
}

func (r *memberRepo) GetBySlackID(ctx context.Context, slackUserID string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members m WHERE m.slack_user_id = ?`

	member, err := scanMember(r.db.QueryRowContext(ctx, query, slackUserID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (r *memberRepo) List(ctx context.Context) ([]entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members m ORDER BY m.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []entity.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, *member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

func (r *memberRepo) Delete(ctx context.Context, memberID int64) error {
	query := `DELETE FROM members WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner, extra ...any) (*entity.Member, error) {
	member := &entity.Member{}
	dest := append([]any{
		&member.ID,
		&member.SlackUserID,
		&member.Name,
		&member.Kana,
		&member.Grade,
		&member.CreatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return member, nil
}
