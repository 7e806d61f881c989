package domain

import "errors"

var (
	ErrNotFound      = errors.New("supplier not found")
	ErrCodeConflict  = errors.New("supplier code already exists")
	ErrInvalidID     = errors.New("invalid supplier id")
	ErrInvalidName   = errors.New("invalid supplier name")
	ErrInvalidStatus = errors.New("invalid supplier status")
	ErrMissingActor  = errors.New("missing acting user")
)
