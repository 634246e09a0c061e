package domain

import (
	"errors"
)

var (
	ErrGigNotFound     = errors.New("gig not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrFetchFailed     = errors.New("fetch from data backend failed")
	ErrNoOpenRoles     = errors.New("gig has no open roles")
	ErrSessionNotFound = errors.New("no active session")
)
