// Package seed bootstraps reference data and the first admin account.
package seed

import (
	"context"
	"errors"

	authdomain "github.com/armadalink/backoffice/internal/auth/domain"
	"github.com/armadalink/backoffice/internal/auth/password"
	"github.com/armadalink/backoffice/internal/config"
	regiondomain "github.com/armadalink/backoffice/internal/region/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const defaultAdminDisplay = "Administrator"

// EnsureRegions seeds the region lookup tables when they are empty.
// The shipped set covers Indonesia plus the neighbouring countries the
// back office routinely ships to. Full region data is loaded separately.
func EnsureRegions(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&regiondomain.Country{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		countries := []regiondomain.Country{
			{Code: "ID", Name: "Indonesia"},
			{Code: "SG", Name: "Singapore"},
			{Code: "MY", Name: "Malaysia"},
			{Code: "TH", Name: "Thailand"},
			{Code: "VN", Name: "Vietnam"},
		}
		if err := tx.Create(&countries).Error; err != nil {
			return err
		}

		provinces := []regiondomain.Province{
			{Code: "31", Name: "DKI Jakarta"},
			{Code: "32", Name: "Jawa Barat"},
			{Code: "33", Name: "Jawa Tengah"},
			{Code: "35", Name: "Jawa Timur"},
			{Code: "36", Name: "Banten"},
		}
		if err := tx.Create(&provinces).Error; err != nil {
			return err
		}

		regencies := []regiondomain.Regency{
			{Code: "3171", ProvinceCode: "31", Name: "Jakarta Selatan"},
			{Code: "3172", ProvinceCode: "31", Name: "Jakarta Timur"},
			{Code: "3173", ProvinceCode: "31", Name: "Jakarta Pusat"},
			{Code: "3273", ProvinceCode: "32", Name: "Bandung"},
			{Code: "3578", ProvinceCode: "35", Name: "Surabaya"},
		}
		if err := tx.Create(&regencies).Error; err != nil {
			return err
		}

		districts := []regiondomain.District{
			{Code: "3171010", RegencyCode: "3171", Name: "Jagakarsa"},
			{Code: "3171020", RegencyCode: "3171", Name: "Pasar Minggu"},
			{Code: "3173010", RegencyCode: "3173", Name: "Gambir"},
			{Code: "3273230", RegencyCode: "3273", Name: "Coblong"},
			{Code: "3578110", RegencyCode: "3578", Name: "Gubeng"},
		}
		return tx.Create(&districts).Error
	})
}

// EnsureAdmin creates the bootstrap admin account when no users exist yet.
// It is a no-op when BOOTSTRAP_ADMIN_PASSWORD is unset.
func EnsureAdmin(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return nil
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authdomain.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := password.Hash(cfg.BootstrapAdminPassword)
		if err != nil {
			return err
		}

		user := authdomain.User{
			ID:           node.Generate(),
			Email:        cfg.BootstrapAdminEmail,
			DisplayName:  defaultAdminDisplay,
			PasswordHash: &hashed,
			IsDefault:    true,
		}
		return tx.Create(&user).Error
	})
}
