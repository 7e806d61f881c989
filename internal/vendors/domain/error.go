package domain

import "errors"

var (
	ErrNotFound      = errors.New("vendor not found")
	ErrCodeConflict  = errors.New("vendor code already exists")
	ErrInvalidID     = errors.New("invalid vendor id")
	ErrInvalidName   = errors.New("invalid vendor name")
	ErrInvalidStatus = errors.New("invalid vendor status")
	ErrMissingActor  = errors.New("missing acting user")
)
