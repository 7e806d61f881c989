package domain

import (
	"context"
	"time"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/pkg/db/pagination"
)

type CreateVendorRequest struct {
	Name         string               `json:"name"`
	Status       *string              `json:"status,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	TaxNumber    *string              `json:"tax_number,omitempty"`
	TaxName      *string              `json:"tax_name,omitempty"`
	TaxAddress   *string              `json:"tax_address,omitempty"`
	TaxDate      *time.Time           `json:"tax_date,omitempty"`
	PaymentTerms *string              `json:"payment_terms,omitempty"`
	PicName      *string              `json:"pic_name,omitempty"`
	PicPosition  *string              `json:"pic_position,omitempty"`
	Addresses    []party.AddressInput `json:"addresses"`
	Contacts     []party.ContactInput `json:"contacts"`
	Bankings     []party.BankingInput `json:"bankings"`
}

// UpdateVendorRequest is a sparse aggregate patch: absent root fields stay
// untouched, children with ids are patched and children without are
// appended. A submitted code is ignored; codes are immutable.
type UpdateVendorRequest struct {
	ID           string               `json:"-"`
	Code         *string              `json:"code,omitempty"`
	Name         *string              `json:"name,omitempty"`
	Status       *string              `json:"status,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	TaxNumber    *string              `json:"tax_number,omitempty"`
	TaxName      *string              `json:"tax_name,omitempty"`
	TaxAddress   *string              `json:"tax_address,omitempty"`
	TaxDate      *time.Time           `json:"tax_date,omitempty"`
	PaymentTerms *string              `json:"payment_terms,omitempty"`
	PicName      *string              `json:"pic_name,omitempty"`
	PicPosition  *string              `json:"pic_position,omitempty"`
	Addresses    []party.AddressInput `json:"addresses"`
	Contacts     []party.ContactInput `json:"contacts"`
	Bankings     []party.BankingInput `json:"bankings"`
}

type ListVendorRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Code      string
	Status    string
}

type ListVendorFilter struct {
	Name   string
	Code   string
	Status string
}

type ListVendorResponse struct {
	pagination.PageInfo
	Vendors []Vendor `json:"vendors"`
}

type Service interface {
	CreateAll(ctx context.Context, req CreateVendorRequest) (VendorDetail, error)
	UpdateAll(ctx context.Context, req UpdateVendorRequest) (VendorDetail, error)
	GetByID(ctx context.Context, id string) (VendorDetail, error)
	List(ctx context.Context, req ListVendorRequest) (ListVendorResponse, error)
	Delete(ctx context.Context, id string) error
}
