package party

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Child inputs use pointer fields so that an absent field is distinguishable
// from an explicit zero value. An input carrying an ID is a sparse patch of
// the identified record; an input without one inserts a new record.

type AddressInput struct {
	ID               *string `json:"id,omitempty"`
	AddressType      *string `json:"address_type,omitempty"`
	AddressLine1     *string `json:"address_line1,omitempty"`
	AddressLine2     *string `json:"address_line2,omitempty"`
	Zipcode          *string `json:"zipcode,omitempty"`
	IsPrimaryAddress *bool   `json:"is_primary_address,omitempty"`
	CountryCode      *string `json:"country_code,omitempty"`
	ProvinceCode     *string `json:"province_code,omitempty"`
	RegencyCode      *string `json:"regency_code,omitempty"`
	DistrictCode     *string `json:"district_code,omitempty"`
}

type ContactInput struct {
	ID               *string `json:"id,omitempty"`
	ContactType      *string `json:"contact_type,omitempty"`
	Name             *string `json:"name,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Email            *string `json:"email,omitempty"`
	FaxNumber        *string `json:"fax_number,omitempty"`
	IsPrimaryContact *bool   `json:"is_primary_contact,omitempty"`
}

type BankingInput struct {
	ID                     *string `json:"id,omitempty"`
	BankingNumber          *string `json:"banking_number,omitempty"`
	BankingName            *string `json:"banking_name,omitempty"`
	BankingBank            *string `json:"banking_bank,omitempty"`
	BankingBranch          *string `json:"banking_branch,omitempty"`
	IsPrimaryBankingNumber *bool   `json:"is_primary_banking_number,omitempty"`
}

func parseChildID(raw *string) (snowflake.ID, error) {
	if raw == nil {
		return 0, nil
	}
	id, err := snowflake.ParseString(*raw)
	if err != nil || id == 0 {
		return 0, ErrChildNotFound
	}
	return id, nil
}

// ValidateForInsert checks the fields the create path requires and that
// submitted enum fields carry known values.
func (in AddressInput) ValidateForInsert() error {
	if in.AddressType == nil {
		return missingField("address_type")
	}
	if !AddressType(*in.AddressType).IsValid() {
		return invalidField("address_type")
	}
	if in.AddressLine1 == nil {
		return missingField("address_line1")
	}
	if in.CountryCode == nil {
		return missingField("country_code")
	}
	if in.IsPrimaryAddress == nil {
		return missingField("is_primary_address")
	}
	return nil
}

func (in ContactInput) ValidateForInsert() error {
	if in.ContactType == nil {
		return missingField("contact_type")
	}
	if !ContactType(*in.ContactType).IsValid() {
		return invalidField("contact_type")
	}
	if in.Name == nil {
		return missingField("name")
	}
	if in.PhoneNumber == nil {
		return missingField("phone_number")
	}
	if in.IsPrimaryContact == nil {
		return missingField("is_primary_contact")
	}
	return nil
}

func (in BankingInput) ValidateForInsert() error {
	if in.BankingNumber == nil {
		return missingField("banking_number")
	}
	if in.BankingName == nil {
		return missingField("banking_name")
	}
	if in.BankingBank == nil {
		return missingField("banking_bank")
	}
	if !Bank(*in.BankingBank).IsValid() {
		return invalidField("banking_bank")
	}
	if in.IsPrimaryBankingNumber == nil {
		return missingField("is_primary_banking_number")
	}
	return nil
}

// ValidateForPatch rejects enum values a sparse patch would otherwise
// write. Absent fields pass; presence is never required on a patch.
func (in AddressInput) ValidateForPatch() error {
	if in.AddressType != nil && !AddressType(*in.AddressType).IsValid() {
		return invalidField("address_type")
	}
	return nil
}

func (in ContactInput) ValidateForPatch() error {
	if in.ContactType != nil && !ContactType(*in.ContactType).IsValid() {
		return invalidField("contact_type")
	}
	return nil
}

func (in BankingInput) ValidateForPatch() error {
	if in.BankingBank != nil && !Bank(*in.BankingBank).IsValid() {
		return invalidField("banking_bank")
	}
	return nil
}

func (in AddressInput) recordID() *string { return in.ID }
func (in ContactInput) recordID() *string { return in.ID }
func (in BankingInput) recordID() *string { return in.ID }

// NewRecord validates the input and builds the row to insert. Region codes
// go through NormalizeRegion so a foreign address never keeps them.
func (in AddressInput) NewRecord(id snowflake.ID, ownerType OwnerType, ownerID snowflake.ID, now time.Time) (Address, error) {
	if err := in.ValidateForInsert(); err != nil {
		return Address{}, err
	}
	province, regency, district := NormalizeRegion(*in.CountryCode, in.ProvinceCode, in.RegencyCode, in.DistrictCode)
	return Address{
		ID:               id,
		OwnerType:        ownerType,
		OwnerID:          ownerID,
		AddressType:      AddressType(*in.AddressType),
		AddressLine1:     *in.AddressLine1,
		AddressLine2:     in.AddressLine2,
		Zipcode:          in.Zipcode,
		IsPrimaryAddress: *in.IsPrimaryAddress,
		CountryCode:      *in.CountryCode,
		ProvinceCode:     province,
		RegencyCode:      regency,
		DistrictCode:     district,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (in ContactInput) NewRecord(id snowflake.ID, ownerType OwnerType, ownerID snowflake.ID, now time.Time) (Contact, error) {
	if err := in.ValidateForInsert(); err != nil {
		return Contact{}, err
	}
	return Contact{
		ID:               id,
		OwnerType:        ownerType,
		OwnerID:          ownerID,
		ContactType:      ContactType(*in.ContactType),
		Name:             *in.Name,
		PhoneNumber:      *in.PhoneNumber,
		Email:            in.Email,
		FaxNumber:        in.FaxNumber,
		IsPrimaryContact: *in.IsPrimaryContact,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (in BankingInput) NewRecord(id snowflake.ID, ownerType OwnerType, ownerID snowflake.ID, now time.Time) (Banking, error) {
	if err := in.ValidateForInsert(); err != nil {
		return Banking{}, err
	}
	return Banking{
		ID:                     id,
		OwnerType:              ownerType,
		OwnerID:                ownerID,
		BankingNumber:          *in.BankingNumber,
		BankingName:            *in.BankingName,
		BankingBank:            Bank(*in.BankingBank),
		BankingBranch:          in.BankingBranch,
		IsPrimaryBankingNumber: *in.IsPrimaryBankingNumber,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

// PatchColumns builds the sparse column set for an update: only fields
// explicitly present in the submission are written. When the patch carries a
// country code the region normalizer runs first, so switching an address to
// a foreign country also clears its subdivision codes.
func (in AddressInput) PatchColumns(now time.Time) map[string]any {
	cols := map[string]any{"updated_at": now}
	if in.AddressType != nil {
		cols["address_type"] = *in.AddressType
	}
	if in.AddressLine1 != nil {
		cols["address_line1"] = *in.AddressLine1
	}
	if in.AddressLine2 != nil {
		cols["address_line2"] = *in.AddressLine2
	}
	if in.Zipcode != nil {
		cols["zipcode"] = *in.Zipcode
	}
	if in.IsPrimaryAddress != nil {
		cols["is_primary_address"] = *in.IsPrimaryAddress
	}

	if in.CountryCode != nil {
		cols["country_code"] = *in.CountryCode
		province, regency, district := NormalizeRegion(*in.CountryCode, in.ProvinceCode, in.RegencyCode, in.DistrictCode)
		if *in.CountryCode != CountryIndonesia {
			cols["province_code"] = nil
			cols["regency_code"] = nil
			cols["district_code"] = nil
			return cols
		}
		if province != nil {
			cols["province_code"] = *province
		}
		if regency != nil {
			cols["regency_code"] = *regency
		}
		if district != nil {
			cols["district_code"] = *district
		}
		return cols
	}

	if in.ProvinceCode != nil {
		cols["province_code"] = *in.ProvinceCode
	}
	if in.RegencyCode != nil {
		cols["regency_code"] = *in.RegencyCode
	}
	if in.DistrictCode != nil {
		cols["district_code"] = *in.DistrictCode
	}
	return cols
}

func (in ContactInput) PatchColumns(now time.Time) map[string]any {
	cols := map[string]any{"updated_at": now}
	if in.ContactType != nil {
		cols["contact_type"] = *in.ContactType
	}
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		cols["phone_number"] = *in.PhoneNumber
	}
	if in.Email != nil {
		cols["email"] = *in.Email
	}
	if in.FaxNumber != nil {
		cols["fax_number"] = *in.FaxNumber
	}
	if in.IsPrimaryContact != nil {
		cols["is_primary_contact"] = *in.IsPrimaryContact
	}
	return cols
}

func (in BankingInput) PatchColumns(now time.Time) map[string]any {
	cols := map[string]any{"updated_at": now}
	if in.BankingNumber != nil {
		cols["banking_number"] = *in.BankingNumber
	}
	if in.BankingName != nil {
		cols["banking_name"] = *in.BankingName
	}
	if in.BankingBank != nil {
		cols["banking_bank"] = *in.BankingBank
	}
	if in.BankingBranch != nil {
		cols["banking_branch"] = *in.BankingBranch
	}
	if in.IsPrimaryBankingNumber != nil {
		cols["is_primary_banking_number"] = *in.IsPrimaryBankingNumber
	}
	return cols
}
