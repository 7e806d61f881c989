package party

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// The reconcilers apply one submitted child collection against storage,
// inside the caller's transaction. Inputs are processed in submission order;
// duplicate ids are not deduplicated, the last patch wins. Any failure
// aborts the transaction, so a half-reconciled collection is never
// persisted.

// childInput is what the shared reconcile loop needs from a submitted
// child: its id (nil on the insert path), validated sparse patch columns,
// and a validated full record for inserts.
type childInput[R any] interface {
	recordID() *string
	ValidateForPatch() error
	PatchColumns(now time.Time) map[string]any
	NewRecord(id snowflake.ID, ownerType OwnerType, ownerID snowflake.ID, now time.Time) (R, error)
}

func reconcile[R any, I childInput[R]](ctx context.Context, tx *gorm.DB, genID *snowflake.Node, ownerType OwnerType, ownerID snowflake.ID, inputs []I, now time.Time) error {
	for _, in := range inputs {
		if in.recordID() != nil {
			id, err := parseChildID(in.recordID())
			if err != nil {
				return err
			}
			if err := in.ValidateForPatch(); err != nil {
				return err
			}
			var model R
			res := tx.WithContext(ctx).Model(&model).
				Where("owner_type = ? AND owner_id = ? AND id = ?", ownerType, ownerID, id).
				Updates(in.PatchColumns(now))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrChildNotFound
			}
			continue
		}

		rec, err := in.NewRecord(genID.Generate(), ownerType, ownerID, now)
		if err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func ReconcileAddresses(ctx context.Context, tx *gorm.DB, genID *snowflake.Node, ownerType OwnerType, ownerID snowflake.ID, inputs []AddressInput, now time.Time) error {
	return reconcile[Address](ctx, tx, genID, ownerType, ownerID, inputs, now)
}

func ReconcileContacts(ctx context.Context, tx *gorm.DB, genID *snowflake.Node, ownerType OwnerType, ownerID snowflake.ID, inputs []ContactInput, now time.Time) error {
	return reconcile[Contact](ctx, tx, genID, ownerType, ownerID, inputs, now)
}

func ReconcileBankings(ctx context.Context, tx *gorm.DB, genID *snowflake.Node, ownerType OwnerType, ownerID snowflake.ID, inputs []BankingInput, now time.Time) error {
	return reconcile[Banking](ctx, tx, genID, ownerType, ownerID, inputs, now)
}

// Loaders return children in a stable order (oldest first) so collection
// order is deterministic across re-reads.

func LoadAddresses(ctx context.Context, db *gorm.DB, ownerType OwnerType, ownerID snowflake.ID) ([]Address, error) {
	var out []Address
	err := db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}

func LoadContacts(ctx context.Context, db *gorm.DB, ownerType OwnerType, ownerID snowflake.ID) ([]Contact, error) {
	var out []Contact
	err := db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}

func LoadBankings(ctx context.Context, db *gorm.DB, ownerType OwnerType, ownerID snowflake.ID) ([]Banking, error) {
	var out []Banking
	err := db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}

// DeleteChildren removes every child row of a root. Used by the cascade on
// root deletion.
func DeleteChildren(ctx context.Context, tx *gorm.DB, ownerType OwnerType, ownerID snowflake.ID) error {
	if err := tx.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Delete(&Address{}).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Delete(&Contact{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Delete(&Banking{}).Error
}
