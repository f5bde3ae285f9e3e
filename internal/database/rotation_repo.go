package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

type rotationRepo struct {
	db dbConn
}

func newRotationRepo(db dbConn) contract.RotationRepo {
	return &rotationRepo{db: db}
}

func (r *rotationRepo) Create(ctx context.Context, memberID int64) error {
	query := `INSERT OR IGNORE INTO rotation_states (member_id) VALUES (?)`

	if _, err := r.db.ExecContext(ctx, query, memberID); err != nil {
		return fmt.Errorf("failed to create rotation state: %w", err)
	}

	return nil
}

func (r *rotationRepo) List(ctx context.Context) ([]entity.RotationState, error) {
	query := `
		SELECT ` + memberColumns + `, s.on_duty, s.done_in_loop
		FROM members m
		JOIN rotation_states s ON s.member_id = m.id
		ORDER BY m.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rotation states: %w", err)
	}
	defer rows.Close()

	var states []entity.RotationState
	for rows.Next() {
		var state entity.RotationState
		member, err := scanMember(rows, &state.OnDuty, &state.DoneInLoop)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rotation state: %w", err)
		}
		state.Member = *member
		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rotation states: %w", err)
	}

	return states, nil
}

func (r *rotationRepo) ListOnDuty(ctx context.Context) ([]entity.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		JOIN rotation_states s ON s.member_id = m.id
		WHERE s.on_duty = 1
		ORDER BY m.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members on duty: %w", err)
	}
	defer rows.Close()

	var members []entity.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member on duty: %w", err)
		}
		members = append(members, *member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members on duty: %w", err)
	}

	return members, nil
}

func (r *rotationRepo) SetOnDuty(ctx context.Context, memberIDs []int64, value bool) error {
	if err := r.setFlag(ctx, "on_duty", memberIDs, value); err != nil {
		return fmt.Errorf("failed to set on duty: %w", err)
	}
	return nil
}

func (r *rotationRepo) SetDoneInLoop(ctx context.Context, memberIDs []int64, value bool) error {
	if err := r.setFlag(ctx, "done_in_loop", memberIDs, value); err != nil {
		return fmt.Errorf("failed to set done in loop: %w", err)
	}
	return nil
}

// setFlag only receives column names from this file, never user input.
func (r *rotationRepo) setFlag(ctx context.Context, column string, memberIDs []int64, value bool) error {
	if len(memberIDs) == 0 {
		return nil
	}

	placeholders, args := inClause(memberIDs)
	query := fmt.Sprintf(
		`UPDATE rotation_states SET %s = ?, updated_at = CURRENT_TIMESTAMP WHERE member_id IN (%s)`,
		column, placeholders,
	)

	_, err := r.db.ExecContext(ctx, query, append([]any{value}, args...)...)
	return err
}
