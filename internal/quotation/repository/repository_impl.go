package repository

import (
	"context"

	"github.com/armadalink/backoffice/internal/quotation/domain"
	"github.com/armadalink/backoffice/pkg/db/option"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, quotation *domain.Quotation) error {
	return db.WithContext(ctx).Create(quotation).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Quotation, error) {
	var quotation domain.Quotation
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&quotation).Error
	if err != nil {
		return nil, err
	}
	if quotation.ID == 0 {
		return nil, nil
	}
	return &quotation, nil
}

func (r *repo) ExistsByNumber(ctx context.Context, db *gorm.DB, number string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Quotation{}).
		Where("number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Quotation{}).
		Where("id = ?", id).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Quotation{}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListQuotationFilter, page pagination.Pagination) ([]*domain.Quotation, error) {
	var quotations []*domain.Quotation
	stmt := db.WithContext(ctx).Model(&domain.Quotation{})
	if filter.CustomerID != 0 {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&quotations).Error
	if err != nil {
		return nil, err
	}
	return quotations, nil
}
