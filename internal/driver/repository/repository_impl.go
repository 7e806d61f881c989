package repository

import (
	"context"

	"github.com/armadalink/backoffice/internal/driver/domain"
	"github.com/armadalink/backoffice/pkg/db/option"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, driver *domain.Driver) error {
	return db.WithContext(ctx).Create(driver).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Driver, error) {
	var driver domain.Driver
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&driver).Error
	if err != nil {
		return nil, err
	}
	if driver.ID == 0 {
		return nil, nil
	}
	return &driver, nil
}

func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Driver{}).
		Where("id = ?", id).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Driver{}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListDriverFilter, page pagination.Pagination) ([]*domain.Driver, error) {
	var drivers []*domain.Driver
	stmt := db.WithContext(ctx).Model(&domain.Driver{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&drivers).Error
	if err != nil {
		return nil, err
	}
	return drivers, nil
}
