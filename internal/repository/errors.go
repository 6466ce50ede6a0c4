package repository

import (
	"errors"
)

var (
	// ErrNotFound is returned by lookups and updates when no record exists at
	// the given key. Updates never create the missing record.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by Create when a unique field (username, email,
	// slug) is already taken. The check and the insert happen under the same
	// lock or database constraint, so two concurrent creates cannot both
	// succeed.
	ErrDuplicate = errors.New("duplicate key")
)
