// Package party holds the shared aggregate-child logic for the business
// parties managed by the back office (customers, suppliers, vendors): the
// child record models, create/patch input handling, region normalization
// and primary-flag bookkeeping.
package party

// OwnerType identifies which aggregate a child record belongs to.
type OwnerType string

const (
	OwnerCustomer OwnerType = "customer"
	OwnerSupplier OwnerType = "supplier"
	OwnerVendor   OwnerType = "vendor"
)

// Status is the lifecycle state shared by all party roots.
type Status string

const (
	StatusActive    Status = "Active"
	StatusNoActive  Status = "NoActive"
	StatusSuspended Status = "Suspended"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusNoActive, StatusSuspended:
		return true
	default:
		return false
	}
}

// AddressType classifies an address row.
type AddressType string

const (
	AddressHeadOffice AddressType = "HeadOffice"
	AddressBranch     AddressType = "Branch"
	AddressWarehouse  AddressType = "Warehouse"
	AddressBilling    AddressType = "Billing"
	AddressShipping   AddressType = "Shipping"
)

func (t AddressType) IsValid() bool {
	switch t {
	case AddressHeadOffice, AddressBranch, AddressWarehouse, AddressBilling, AddressShipping:
		return true
	default:
		return false
	}
}

// ContactType classifies a contact row.
type ContactType string

const (
	ContactPrimary   ContactType = "Primary"
	ContactBilling   ContactType = "Billing"
	ContactShipping  ContactType = "Shipping"
	ContactEmergency ContactType = "Emergency"
	ContactTechnical ContactType = "Technical"
)

func (t ContactType) IsValid() bool {
	switch t {
	case ContactPrimary, ContactBilling, ContactShipping, ContactEmergency, ContactTechnical:
		return true
	default:
		return false
	}
}

// Bank is one of the supported settlement banks for vendor banking records.
type Bank string

const (
	BankBCA     Bank = "BCA"
	BankMandiri Bank = "Mandiri"
	BankBNI     Bank = "BNI"
	BankBRI     Bank = "BRI"
	BankCIMB    Bank = "CIMB"
	BankPermata Bank = "Permata"
)

func (b Bank) IsValid() bool {
	switch b {
	case BankBCA, BankMandiri, BankBNI, BankBRI, BankCIMB, BankPermata:
		return true
	default:
		return false
	}
}

// CountryIndonesia is the only country whose addresses carry
// province/regency/district subdivision codes.
const CountryIndonesia = "ID"
