package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNotConfirmed          = errors.New("action not confirmed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
