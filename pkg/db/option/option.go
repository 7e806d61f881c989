package option

import (
	"time"

	"github.com/armadalink/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement before execution.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type optionFunc func(stmt *gorm.DB) *gorm.DB

func (f optionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

// ApplyPagination decodes the cursor token and applies keyset pagination.
// One extra row is fetched so callers can detect a following page.
func ApplyPagination(page pagination.Pagination) Option {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		size := page.PageSize
		if size <= 0 {
			size = 25
		}
		if page.PageToken != "" {
			cursor, err := pagination.DecodeCursor(page.PageToken)
			if err == nil && cursor != nil {
				if ts, terr := time.Parse(time.RFC3339, cursor.CreatedAt); terr == nil {
					stmt = stmt.Where("(created_at, id) < (?, ?)", ts, cursor.ID)
				}
			}
		}
		return stmt.Limit(size + 1)
	})
}
