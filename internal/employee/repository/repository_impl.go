package repository

import (
	"context"

	"github.com/armadalink/backoffice/internal/employee/domain"
	"github.com/armadalink/backoffice/pkg/db/option"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	return db.WithContext(ctx).Create(employee).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Employee, error) {
	var employee domain.Employee
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&employee).Error
	if err != nil {
		return nil, err
	}
	if employee.ID == 0 {
		return nil, nil
	}
	return &employee, nil
}

func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, cols map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Employee{}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListEmployeeFilter, page pagination.Pagination) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	stmt := db.WithContext(ctx).Model(&domain.Employee{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}
