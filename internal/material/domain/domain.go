// Package domain contains core types for the material service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Material struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Description *string      `gorm:"type:text" json:"description,omitempty"`
	UOM         *string      `gorm:"column:uom;type:text" json:"uom,omitempty"`
	UnitPrice   *float64     `gorm:"column:unit_price" json:"unit_price,omitempty"`
	Status      party.Status `gorm:"type:text;not null" json:"status"`
	CreatedBy   snowflake.ID `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Material) TableName() string { return "materials" }

type CreateMaterialRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	UOM         *string  `json:"uom,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type UpdateMaterialRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	UOM         *string  `json:"uom,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type ListMaterialRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Status    string
}

type ListMaterialFilter struct {
	Name   string
	Status string
}

type ListMaterialResponse struct {
	pagination.PageInfo
	Materials []Material `json:"materials"`
}

type Service interface {
	Create(ctx context.Context, req CreateMaterialRequest) (Material, error)
	Update(ctx context.Context, req UpdateMaterialRequest) (Material, error)
	GetByID(ctx context.Context, id string) (Material, error)
	List(ctx context.Context, req ListMaterialRequest) (ListMaterialResponse, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, material *Material) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Material, error)
	ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListMaterialFilter, page pagination.Pagination) ([]*Material, error)
}

var (
	ErrNotFound      = errors.New("material not found")
	ErrCodeConflict  = errors.New("material code already exists")
	ErrInvalidID     = errors.New("invalid material id")
	ErrInvalidName   = errors.New("invalid material name")
	ErrInvalidStatus = errors.New("invalid material status")
	ErrMissingActor  = errors.New("missing acting user")
)
