package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	memberRepo   contract.MemberRepo
	rotationRepo contract.RotationRepo
	statsRepo    contract.StatsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		memberRepo:   newMemberRepo(db),
		rotationRepo: newRotationRepo(db),
		statsRepo:    newStatsRepo(db),
	}
}

// Member returns the roster repository
func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

// Rotation returns the rotation state repository
func (i *instance) Rotation() contract.RotationRepo {
	return i.rotationRepo
}

// Stats returns the member statistics repository
func (i *instance) Stats() contract.StatsRepo {
	return i.statsRepo
}

// WithTransaction executes a function within a database transaction.
// Calling it on a transactional instance reuses the running transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
