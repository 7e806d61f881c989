// Package sequence allocates prefixed business codes (CUST-000001, ...)
// from a per-kind counter table.
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// NextCode claims the next code for a kind inside the caller's transaction.
// The counter row is upserted atomically, so concurrent creates of the same
// kind serialize on the row and never hand out the same number twice.
func NextCode(ctx context.Context, tx *gorm.DB, kind, prefix string, width int) (string, error) {
	seq, err := nextSeq(ctx, tx, kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%0*d", prefix, width, seq), nil
}

func nextSeq(ctx context.Context, tx *gorm.DB, kind string) (int64, error) {
	var row struct {
		LastSeq int64 `gorm:"column:last_seq"`
	}

	// mysql has no RETURNING; the upsert holds the row lock, so the read
	// back inside the same transaction sees the claimed value.
	if tx.Dialector.Name() == "mysql" {
		err := tx.WithContext(ctx).Exec(
			`INSERT INTO code_sequences (kind, last_seq) VALUES (?, 1)
			 ON DUPLICATE KEY UPDATE last_seq = last_seq + 1`,
			kind,
		).Error
		if err != nil {
			return 0, err
		}
		err = tx.WithContext(ctx).Raw(
			`SELECT last_seq FROM code_sequences WHERE kind = ?`, kind,
		).Scan(&row).Error
		return row.LastSeq, err
	}

	err := tx.WithContext(ctx).Raw(
		`INSERT INTO code_sequences (kind, last_seq) VALUES (?, 1)
		 ON CONFLICT (kind) DO UPDATE SET last_seq = code_sequences.last_seq + 1
		 RETURNING last_seq`,
		kind,
	).Scan(&row).Error
	return row.LastSeq, err
}
