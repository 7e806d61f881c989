package region

import (
	"context"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/region/domain"
)

// ResolveAddressViews decorates address rows with their lookup names. Codes
// are collected across the whole collection first so each lookup table is
// queried once per read, not once per row.
func ResolveAddressViews(ctx context.Context, repo domain.Repository, addresses []party.Address) ([]party.AddressView, error) {
	countryCodes := make([]string, 0, len(addresses))
	provinceCodes := make([]string, 0, len(addresses))
	regencyCodes := make([]string, 0, len(addresses))
	districtCodes := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		countryCodes = append(countryCodes, addr.CountryCode)
		if addr.ProvinceCode != nil {
			provinceCodes = append(provinceCodes, *addr.ProvinceCode)
		}
		if addr.RegencyCode != nil {
			regencyCodes = append(regencyCodes, *addr.RegencyCode)
		}
		if addr.DistrictCode != nil {
			districtCodes = append(districtCodes, *addr.DistrictCode)
		}
	}

	countries, err := repo.CountryNames(ctx, countryCodes)
	if err != nil {
		return nil, err
	}
	provinces, err := repo.ProvinceNames(ctx, provinceCodes)
	if err != nil {
		return nil, err
	}
	regencies, err := repo.RegencyNames(ctx, regencyCodes)
	if err != nil {
		return nil, err
	}
	districts, err := repo.DistrictNames(ctx, districtCodes)
	if err != nil {
		return nil, err
	}

	views := make([]party.AddressView, 0, len(addresses))
	for _, addr := range addresses {
		view := party.AddressView{Address: addr}
		if name, ok := countries[addr.CountryCode]; ok {
			view.CountryName = &name
		}
		if addr.ProvinceCode != nil {
			if name, ok := provinces[*addr.ProvinceCode]; ok {
				view.ProvinceName = &name
			}
		}
		if addr.RegencyCode != nil {
			if name, ok := regencies[*addr.RegencyCode]; ok {
				view.RegencyName = &name
			}
		}
		if addr.DistrictCode != nil {
			if name, ok := districts[*addr.DistrictCode]; ok {
				view.DistrictName = &name
			}
		}
		views = append(views, view)
	}
	return views, nil
}
