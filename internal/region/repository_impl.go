package region

import (
	"context"

	"github.com/armadalink/backoffice/internal/region/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name FROM countries ORDER BY name`).
		Scan(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *repository) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	var provinces []domain.Province
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name FROM provinces ORDER BY name`).
		Scan(&provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

func (r *repository) ListRegenciesByProvince(ctx context.Context, provinceCode string) ([]domain.Regency, error) {
	var regencies []domain.Regency
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, province_code, name FROM regencies WHERE province_code = ? ORDER BY name`, provinceCode).
		Scan(&regencies).Error
	if err != nil {
		return nil, err
	}
	return regencies, nil
}

func (r *repository) ListDistrictsByRegency(ctx context.Context, regencyCode string) ([]domain.District, error) {
	var districts []domain.District
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, regency_code, name FROM districts WHERE regency_code = ? ORDER BY name`, regencyCode).
		Scan(&districts).Error
	if err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *repository) CountryNames(ctx context.Context, codes []string) (map[string]string, error) {
	return r.names(ctx, `SELECT code, name FROM countries WHERE code IN ?`, codes)
}

func (r *repository) ProvinceNames(ctx context.Context, codes []string) (map[string]string, error) {
	return r.names(ctx, `SELECT code, name FROM provinces WHERE code IN ?`, codes)
}

func (r *repository) RegencyNames(ctx context.Context, codes []string) (map[string]string, error) {
	return r.names(ctx, `SELECT code, name FROM regencies WHERE code IN ?`, codes)
}

func (r *repository) DistrictNames(ctx context.Context, codes []string) (map[string]string, error) {
	return r.names(ctx, `SELECT code, name FROM districts WHERE code IN ?`, codes)
}

func (r *repository) names(ctx context.Context, query string, codes []string) (map[string]string, error) {
	out := make(map[string]string, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	type row struct {
		Code string `gorm:"column:code"`
		Name string `gorm:"column:name"`
	}
	var rows []row
	err := r.db.WithContext(ctx).Raw(query, codes).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, item := range rows {
		out[item.Code] = item.Name
	}
	return out, nil
}
