package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrNoTableAvailable  = errors.New("no table available for this time slot")
	ErrTableConflict     = errors.New("table already booked for this time slot")
	ErrInvalidTransition = errors.New("reservation status cannot change anymore")
	ErrStoreUnavailable  = errors.New("reservation store unavailable")

	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrNotSubscribed      = errors.New("email is not subscribed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)
