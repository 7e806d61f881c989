package domain

import "errors"

var (
	ErrNotFound      = errors.New("customer not found")
	ErrCodeConflict  = errors.New("customer code already exists")
	ErrInvalidID     = errors.New("invalid customer id")
	ErrInvalidName   = errors.New("invalid customer name")
	ErrInvalidStatus = errors.New("invalid customer status")
	ErrMissingActor  = errors.New("missing acting user")
)
