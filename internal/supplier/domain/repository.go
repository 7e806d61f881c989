package domain

import (
	"context"

	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Supplier, error)
	ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListSupplierFilter, page pagination.Pagination) ([]*Supplier, error)
}
