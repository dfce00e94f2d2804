package services

import "errors"

// Engine failure kinds. Controllers map these to response codes; nothing in
// this package panics across the HTTP boundary.
var (
	ErrNotFound              = errors.New("not found")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrAlreadyClaimed        = errors.New("already claimed")
	ErrNoBoxesAvailable      = errors.New("no boxes available")
	ErrNoSpinsAvailable      = errors.New("no spins available")
	ErrInvalidConfiguration  = errors.New("invalid configuration")
	ErrConflict              = errors.New("conflict")
)
