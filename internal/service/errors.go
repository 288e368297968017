package service

import "errors"

var (
	// ErrInvalidInput covers empty required fields and malformed emails. No
	// write is attempted; the caller can correct the input and retry.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUser is returned when registering a username that exists.
	ErrDuplicateUser = errors.New("username is already taken")
	// ErrUserNotFound is returned on login with an unknown username. Surfaced
	// as a soft warning directing the user toward registration.
	ErrUserNotFound = errors.New("username not found")
	// ErrAlreadySubmitted is returned when a second daily entry or weekly
	// letter is submitted for the same period.
	ErrAlreadySubmitted = errors.New("already submitted for this period")
	// ErrNotSubmitted is returned when reading the current period's submission
	// before one exists; the frontend shows the form instead.
	ErrNotSubmitted = errors.New("no submission for this period")
	// ErrNotSuperuser is returned when a regular user reaches an unfiltered view.
	ErrNotSuperuser = errors.New("superuser access required")
)
