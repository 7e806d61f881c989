// Package domain contains core types for the quotation service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft    Status = "Draft"
	StatusSent     Status = "Sent"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Quotation struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Number      string       `gorm:"type:text;not null;uniqueIndex" json:"number"`
	CustomerID  snowflake.ID `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Origin      string       `gorm:"type:text;not null" json:"origin"`
	Destination string       `gorm:"type:text;not null" json:"destination"`
	Price       float64      `gorm:"not null" json:"price"`
	Status      Status       `gorm:"type:text;not null" json:"status"`
	ValidUntil  *time.Time   `gorm:"column:valid_until" json:"valid_until,omitempty"`
	Notes       *string      `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy   snowflake.ID `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Quotation) TableName() string { return "quotations" }

type CreateQuotationRequest struct {
	CustomerID  string     `json:"customer_id"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Price       float64    `json:"price"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type UpdateQuotationRequest struct {
	ID          string     `json:"-"`
	Origin      *string    `json:"origin,omitempty"`
	Destination *string    `json:"destination,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Status      *string    `json:"status,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type ListQuotationRequest struct {
	PageToken  string
	PageSize   int32
	CustomerID string
	Status     string
}

type ListQuotationFilter struct {
	CustomerID snowflake.ID
	Status     string
}

type ListQuotationResponse struct {
	pagination.PageInfo
	Quotations []Quotation `json:"quotations"`
}

type Service interface {
	Create(ctx context.Context, req CreateQuotationRequest) (Quotation, error)
	Update(ctx context.Context, req UpdateQuotationRequest) (Quotation, error)
	GetByID(ctx context.Context, id string) (Quotation, error)
	List(ctx context.Context, req ListQuotationRequest) (ListQuotationResponse, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, quotation *Quotation) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Quotation, error)
	ExistsByNumber(ctx context.Context, db *gorm.DB, number string) (bool, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListQuotationFilter, page pagination.Pagination) ([]*Quotation, error)
}

var (
	ErrNotFound       = errors.New("quotation not found")
	ErrNumberConflict = errors.New("quotation number already exists")
	ErrInvalidID      = errors.New("invalid quotation id")
	ErrInvalidRoute   = errors.New("invalid quotation route")
	ErrInvalidPrice   = errors.New("invalid quotation price")
	ErrInvalidStatus  = errors.New("invalid quotation status")
	ErrCustomerGone   = errors.New("quotation customer not found")
	ErrMissingActor   = errors.New("missing acting user")
)
