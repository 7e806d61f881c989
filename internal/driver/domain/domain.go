// Package domain contains core types for the driver service.
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

type Driver struct {
	ID            snowflake.ID  `gorm:"primaryKey" json:"id"`
	EmployeeID    *snowflake.ID `gorm:"column:employee_id;index" json:"employee_id,omitempty"`
	Name          string        `gorm:"type:text;not null" json:"name"`
	LicenseNumber string        `gorm:"column:license_number;type:text;not null;uniqueIndex" json:"license_number"`
	LicenseType   string        `gorm:"column:license_type;type:text;not null" json:"license_type"`
	LicenseExpiry *time.Time    `gorm:"column:license_expiry" json:"license_expiry,omitempty"`
	PhoneNumber   string        `gorm:"column:phone_number;type:text;not null" json:"phone_number"`
	Status        party.Status  `gorm:"type:text;not null" json:"status"`
	CreatedBy     snowflake.ID  `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Driver) TableName() string { return "drivers" }

type CreateDriverRequest struct {
	EmployeeID    *string    `json:"employee_id,omitempty"`
	Name          string     `json:"name"`
	LicenseNumber string     `json:"license_number"`
	LicenseType   string     `json:"license_type"`
	LicenseExpiry *time.Time `json:"license_expiry,omitempty"`
	PhoneNumber   string     `json:"phone_number"`
	Status        *string    `json:"status,omitempty"`
}

type UpdateDriverRequest struct {
	ID            string     `json:"-"`
	Name          *string    `json:"name,omitempty"`
	LicenseNumber *string    `json:"license_number,omitempty"`
	LicenseType   *string    `json:"license_type,omitempty"`
	LicenseExpiry *time.Time `json:"license_expiry,omitempty"`
	PhoneNumber   *string    `json:"phone_number,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

type ListDriverRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Status    string
}

type ListDriverFilter struct {
	Name   string
	Status string
}

type ListDriverResponse struct {
	pagination.PageInfo
	Drivers []Driver `json:"drivers"`
}

type Service interface {
	Create(ctx context.Context, req CreateDriverRequest) (Driver, error)
	Update(ctx context.Context, req UpdateDriverRequest) (Driver, error)
	GetByID(ctx context.Context, id string) (Driver, error)
	List(ctx context.Context, req ListDriverRequest) (ListDriverResponse, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, driver *Driver) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Driver, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListDriverFilter, page pagination.Pagination) ([]*Driver, error)
}

var (
	ErrNotFound        = errors.New("driver not found")
	ErrInvalidID       = errors.New("invalid driver id")
	ErrInvalidName     = errors.New("invalid driver name")
	ErrInvalidLicense  = errors.New("invalid driver license")
	ErrLicenseConflict = errors.New("driver license already registered")
	ErrInvalidStatus   = errors.New("invalid driver status")
	ErrMissingActor    = errors.New("missing acting user")
)
