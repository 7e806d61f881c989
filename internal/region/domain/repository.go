package domain

import "context"

type Repository interface {
	ListCountries(ctx context.Context) ([]Country, error)
	ListProvinces(ctx context.Context) ([]Province, error)
	ListRegenciesByProvince(ctx context.Context, provinceCode string) ([]Regency, error)
	ListDistrictsByRegency(ctx context.Context, regencyCode string) ([]District, error)

	CountryNames(ctx context.Context, codes []string) (map[string]string, error)
	ProvinceNames(ctx context.Context, codes []string) (map[string]string, error)
	RegencyNames(ctx context.Context, codes []string) (map[string]string, error)
	DistrictNames(ctx context.Context, codes []string) (map[string]string, error)
}
