package domain

import (
	"time"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Vendor struct {
	ID           snowflake.ID      `gorm:"primaryKey" json:"id"`
	Code         string            `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name         string            `gorm:"type:text;not null" json:"name"`
	Status       party.Status      `gorm:"type:text;not null" json:"status"`
	Notes        *string           `gorm:"type:text" json:"notes,omitempty"`
	TaxNumber    *string           `gorm:"column:tax_number;type:text" json:"tax_number,omitempty"`
	TaxName      *string           `gorm:"column:tax_name;type:text" json:"tax_name,omitempty"`
	TaxAddress   *string           `gorm:"column:tax_address;type:text" json:"tax_address,omitempty"`
	TaxDate      *time.Time        `gorm:"column:tax_date" json:"tax_date,omitempty"`
	PaymentTerms *string           `gorm:"column:payment_terms;type:text" json:"payment_terms,omitempty"`
	PicName      *string           `gorm:"column:pic_name;type:text" json:"pic_name,omitempty"`
	PicPosition  *string           `gorm:"column:pic_position;type:text" json:"pic_position,omitempty"`
	CreatedBy    snowflake.ID      `gorm:"column:created_by;not null" json:"created_by"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Vendor) TableName() string { return "vendors" }

// VendorDetail is the full aggregate as returned by the read paths.
// Vendors carry banking records on top of addresses and contacts.
type VendorDetail struct {
	Vendor
	Addresses []party.AddressView `json:"addresses"`
	Contacts  []party.Contact     `json:"contacts"`
	Bankings  []party.Banking     `json:"bankings"`
}
