package party

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Address is a physical location owned by a party aggregate.
// Province/regency/district codes are only meaningful for Indonesian
// addresses; NormalizeRegion strips them for any other country.
type Address struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerType        OwnerType    `gorm:"column:owner_type;type:text;not null;index:idx_addresses_owner" json:"-"`
	OwnerID          snowflake.ID `gorm:"column:owner_id;not null;index:idx_addresses_owner" json:"-"`
	AddressType      AddressType  `gorm:"column:address_type;type:text;not null" json:"address_type"`
	AddressLine1     string       `gorm:"column:address_line1;type:text;not null" json:"address_line1"`
	AddressLine2     *string      `gorm:"column:address_line2;type:text" json:"address_line2,omitempty"`
	Zipcode          *string      `gorm:"column:zipcode;type:text" json:"zipcode,omitempty"`
	IsPrimaryAddress bool         `gorm:"column:is_primary_address;not null" json:"is_primary_address"`
	CountryCode      string       `gorm:"column:country_code;type:char(2);not null" json:"country_code"`
	ProvinceCode     *string      `gorm:"column:province_code;type:text" json:"province_code,omitempty"`
	RegencyCode      *string      `gorm:"column:regency_code;type:text" json:"regency_code,omitempty"`
	DistrictCode     *string      `gorm:"column:district_code;type:text" json:"district_code,omitempty"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Address) TableName() string { return "party_addresses" }

// Contact is a person reachable for a party aggregate.
type Contact struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerType        OwnerType    `gorm:"column:owner_type;type:text;not null;index:idx_contacts_owner" json:"-"`
	OwnerID          snowflake.ID `gorm:"column:owner_id;not null;index:idx_contacts_owner" json:"-"`
	ContactType      ContactType  `gorm:"column:contact_type;type:text;not null" json:"contact_type"`
	Name             string       `gorm:"column:name;type:text;not null" json:"name"`
	PhoneNumber      string       `gorm:"column:phone_number;type:text;not null" json:"phone_number"`
	Email            *string      `gorm:"column:email;type:text" json:"email,omitempty"`
	FaxNumber        *string      `gorm:"column:fax_number;type:text" json:"fax_number,omitempty"`
	IsPrimaryContact bool         `gorm:"column:is_primary_contact;not null" json:"is_primary_contact"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Contact) TableName() string { return "party_contacts" }

// Banking is a settlement account. Only vendor aggregates carry these.
type Banking struct {
	ID                     snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerType              OwnerType    `gorm:"column:owner_type;type:text;not null;index:idx_bankings_owner" json:"-"`
	OwnerID                snowflake.ID `gorm:"column:owner_id;not null;index:idx_bankings_owner" json:"-"`
	BankingNumber          string       `gorm:"column:banking_number;type:text;not null" json:"banking_number"`
	BankingName            string       `gorm:"column:banking_name;type:text;not null" json:"banking_name"`
	BankingBank            Bank         `gorm:"column:banking_bank;type:text;not null" json:"banking_bank"`
	BankingBranch          *string      `gorm:"column:banking_branch;type:text" json:"banking_branch,omitempty"`
	IsPrimaryBankingNumber bool         `gorm:"column:is_primary_banking_number;not null" json:"is_primary_banking_number"`
	CreatedAt              time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt              time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Banking) TableName() string { return "party_bankings" }
