package party

// NormalizeRegion decides which Indonesian subdivision codes an address may
// keep. Indonesian addresses pass their codes through untouched, including
// partial chains (a province without a regency is accepted as-is). Any other
// country loses all three codes regardless of what was submitted: foreign
// addresses never carry Indonesian subdivision references.
func NormalizeRegion(countryCode string, province, regency, district *string) (*string, *string, *string) {
	if countryCode == CountryIndonesia {
		return province, regency, district
	}
	return nil, nil, nil
}
