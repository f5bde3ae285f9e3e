package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCurrentAssignment is returned when nobody is on duty.
	ErrNoCurrentAssignment = errors.New("no current duty assignment")
	// ErrNoEligiblePair is returned when the roster cannot yield two distinct members.
	ErrNoEligiblePair = errors.New("no eligible duty pair")
	// ErrStoreUnavailable wraps failures of the persistence layer.
	ErrStoreUnavailable = errors.New("rotation store unavailable")

	ErrMemberNotFound = errors.New("member not found in roster")
	ErrMemberExists   = errors.New("member is already in the roster")
)

// StoreUnavailable marks err as a persistence failure while keeping the cause.
func StoreUnavailable(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
