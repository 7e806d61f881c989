// Package domain contains core types for the employee service.
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

type Employee struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Email       *string      `gorm:"type:text" json:"email,omitempty"`
	PhoneNumber string       `gorm:"column:phone_number;type:text;not null" json:"phone_number"`
	Position    *string      `gorm:"type:text" json:"position,omitempty"`
	Status      party.Status `gorm:"type:text;not null" json:"status"`
	JoinDate    *time.Time   `gorm:"column:join_date" json:"join_date,omitempty"`
	CreatedBy   snowflake.ID `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

type CreateEmployeeRequest struct {
	Name        string     `json:"name"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber string     `json:"phone_number"`
	Position    *string    `json:"position,omitempty"`
	Status      *string    `json:"status,omitempty"`
	JoinDate    *time.Time `json:"join_date,omitempty"`
}

type UpdateEmployeeRequest struct {
	ID          string     `json:"-"`
	Name        *string    `json:"name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Position    *string    `json:"position,omitempty"`
	Status      *string    `json:"status,omitempty"`
	JoinDate    *time.Time `json:"join_date,omitempty"`
}

type ListEmployeeRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Status    string
}

type ListEmployeeFilter struct {
	Name   string
	Status string
}

type ListEmployeeResponse struct {
	pagination.PageInfo
	Employees []Employee `json:"employees"`
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, req ListEmployeeRequest) (ListEmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, employee *Employee) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Employee, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListEmployeeFilter, page pagination.Pagination) ([]*Employee, error)
}

var (
	ErrNotFound      = errors.New("employee not found")
	ErrInvalidID     = errors.New("invalid employee id")
	ErrInvalidName   = errors.New("invalid employee name")
	ErrInvalidPhone  = errors.New("invalid employee phone number")
	ErrInvalidStatus = errors.New("invalid employee status")
	ErrMissingActor  = errors.New("missing acting user")
)
