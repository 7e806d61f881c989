package domain

import "time"

// Indonesian administrative-region lookup tables, plus the country list.
// Regions form a chain: province > regency > district.

type Country struct {
	Code      string    `json:"code" gorm:"type:char(2);primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Country) TableName() string { return "countries" }

type Province struct {
	Code      string    `json:"code" gorm:"type:text;primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Province) TableName() string { return "provinces" }

type Regency struct {
	Code         string    `json:"code" gorm:"type:text;primaryKey;column:code"`
	ProvinceCode string    `json:"province_code" gorm:"type:text;not null;index"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Regency) TableName() string { return "regencies" }

type District struct {
	Code        string    `json:"code" gorm:"type:text;primaryKey;column:code"`
	RegencyCode string    `json:"regency_code" gorm:"type:text;not null;index"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (District) TableName() string { return "districts" }
