package repository

import (
	"context"

	"github.com/armadalink/backoffice/internal/customer/domain"
	"github.com/armadalink/backoffice/pkg/db/option"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Customer{}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListCustomerFilter, page pagination.Pagination) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	stmt := db.WithContext(ctx).Model(&domain.Customer{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Code != "" {
		stmt = stmt.Where("code = ?", filter.Code)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
