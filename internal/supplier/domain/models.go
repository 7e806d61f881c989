package domain

import (
	"time"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Supplier struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id"`
	Code       string            `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name       string            `gorm:"type:text;not null" json:"name"`
	Status     party.Status      `gorm:"type:text;not null" json:"status"`
	Notes      *string           `gorm:"type:text" json:"notes,omitempty"`
	TaxNumber  *string           `gorm:"column:tax_number;type:text" json:"tax_number,omitempty"`
	TaxName    *string           `gorm:"column:tax_name;type:text" json:"tax_name,omitempty"`
	TaxAddress *string           `gorm:"column:tax_address;type:text" json:"tax_address,omitempty"`
	TaxDate    *time.Time        `gorm:"column:tax_date" json:"tax_date,omitempty"`
	CreatedBy  snowflake.ID      `gorm:"column:created_by;not null" json:"created_by"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }

// SupplierDetail is the full aggregate as returned by the read paths:
// the root plus its children with region lookup names resolved.
type SupplierDetail struct {
	Supplier
	Addresses []party.AddressView `json:"addresses"`
	Contacts  []party.Contact     `json:"contacts"`
}
