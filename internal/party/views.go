package party

// AddressView is an Address with its region lookup names resolved, as
// returned by the aggregate read paths.
type AddressView struct {
	Address
	CountryName  *string `json:"country_name,omitempty"`
	ProvinceName *string `json:"province_name,omitempty"`
	RegencyName  *string `json:"regency_name,omitempty"`
	DistrictName *string `json:"district_name,omitempty"`
}
