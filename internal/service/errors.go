package service

import (
	"errors"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown username,
	// wrong password, deactivated account. Callers never learn which.
	ErrInvalidCredentials = errors.New("invalid credentials or account deactivated")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrSlugTaken     = errors.New("slug already exists")
)
