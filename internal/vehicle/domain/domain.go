// Package domain contains core types for the vehicle service.
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

type Vehicle struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	PlateNumber string       `gorm:"column:plate_number;type:text;not null;uniqueIndex" json:"plate_number"`
	VehicleType string       `gorm:"column:vehicle_type;type:text;not null" json:"vehicle_type"`
	Brand       *string      `gorm:"type:text" json:"brand,omitempty"`
	Year        *int         `gorm:"type:int" json:"year,omitempty"`
	CapacityKg  *int64       `gorm:"column:capacity_kg" json:"capacity_kg,omitempty"`
	Status      party.Status `gorm:"type:text;not null" json:"status"`
	CreatedBy   snowflake.ID `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }

type CreateVehicleRequest struct {
	PlateNumber string  `json:"plate_number"`
	VehicleType string  `json:"vehicle_type"`
	Brand       *string `json:"brand,omitempty"`
	Year        *int    `json:"year,omitempty"`
	CapacityKg  *int64  `json:"capacity_kg,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type UpdateVehicleRequest struct {
	ID          string  `json:"-"`
	PlateNumber *string `json:"plate_number,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	Brand       *string `json:"brand,omitempty"`
	Year        *int    `json:"year,omitempty"`
	CapacityKg  *int64  `json:"capacity_kg,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type ListVehicleRequest struct {
	PageToken   string
	PageSize    int32
	PlateNumber string
	VehicleType string
	Status      string
}

type ListVehicleFilter struct {
	PlateNumber string
	VehicleType string
	Status      string
}

type ListVehicleResponse struct {
	pagination.PageInfo
	Vehicles []Vehicle `json:"vehicles"`
}

type Service interface {
	Create(ctx context.Context, req CreateVehicleRequest) (Vehicle, error)
	Update(ctx context.Context, req UpdateVehicleRequest) (Vehicle, error)
	GetByID(ctx context.Context, id string) (Vehicle, error)
	List(ctx context.Context, req ListVehicleRequest) (ListVehicleResponse, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vehicle *Vehicle) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Vehicle, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListVehicleFilter, page pagination.Pagination) ([]*Vehicle, error)
}

var (
	ErrNotFound      = errors.New("vehicle not found")
	ErrInvalidID     = errors.New("invalid vehicle id")
	ErrInvalidPlate  = errors.New("invalid vehicle plate number")
	ErrPlateConflict = errors.New("vehicle plate number already registered")
	ErrInvalidType   = errors.New("invalid vehicle type")
	ErrInvalidStatus = errors.New("invalid vehicle status")
	ErrMissingActor  = errors.New("missing acting user")
)
