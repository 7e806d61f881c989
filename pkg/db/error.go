package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// driver-specific unique violation messages, for paths where gorm's
// TranslateError does not fire (raw SQL, older driver versions).
var duplicateKeyMarkers = []string{
	"duplicate key value violates unique constraint", // postgres 23505
	"Error 1062",                // mysql
	"UNIQUE constraint failed",  // sqlite 2067
	"constraint failed: UNIQUE", // modernc sqlite
}

// IsDuplicateKeyErr reports whether err is a unique constraint violation
// on any supported dialect.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	for _, marker := range duplicateKeyMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
