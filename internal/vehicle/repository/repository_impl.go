package repository

import (
	"context"

	"github.com/armadalink/backoffice/internal/vehicle/domain"
	"github.com/armadalink/backoffice/pkg/db/option"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, vehicle *domain.Vehicle) error {
	return db.WithContext(ctx).Create(vehicle).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&vehicle).Error
	if err != nil {
		return nil, err
	}
	if vehicle.ID == 0 {
		return nil, nil
	}
	return &vehicle, nil
}

func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Vehicle{}).
		Where("id = ?", id).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Vehicle{}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListVehicleFilter, page pagination.Pagination) ([]*domain.Vehicle, error) {
	var vehicles []*domain.Vehicle
	stmt := db.WithContext(ctx).Model(&domain.Vehicle{})
	if filter.PlateNumber != "" {
		stmt = stmt.Where("plate_number LIKE ?", "%"+filter.PlateNumber+"%")
	}
	if filter.VehicleType != "" {
		stmt = stmt.Where("vehicle_type = ?", filter.VehicleType)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}
