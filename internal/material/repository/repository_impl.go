package repository

import (
	"context"

	"github.com/armadalink/backoffice/internal/material/domain"
	"github.com/armadalink/backoffice/pkg/db/option"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Create(material).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Material, error) {
	var material domain.Material
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&material).Error
	if err != nil {
		return nil, err
	}
	if material.ID == 0 {
		return nil, nil
	}
	return &material, nil
}

func (r *repo) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Material{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Material{}).
		Where("id = ?", id).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Material{}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListMaterialFilter, page pagination.Pagination) ([]*domain.Material, error) {
	var materials []*domain.Material
	stmt := db.WithContext(ctx).Model(&domain.Material{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}
