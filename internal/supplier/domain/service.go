package domain

import (
	"context"
	"time"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/pkg/db/pagination"
)

type CreateSupplierRequest struct {
	Name       string               `json:"name"`
	Status     *string              `json:"status,omitempty"`
	Notes      *string              `json:"notes,omitempty"`
	TaxNumber  *string              `json:"tax_number,omitempty"`
	TaxName    *string              `json:"tax_name,omitempty"`
	TaxAddress *string              `json:"tax_address,omitempty"`
	TaxDate    *time.Time           `json:"tax_date,omitempty"`
	Addresses  []party.AddressInput `json:"addresses"`
	Contacts   []party.ContactInput `json:"contacts"`
}

// UpdateSupplierRequest is a sparse aggregate patch: absent root fields stay
// untouched, children with ids are patched and children without are
// appended. A submitted code is ignored; codes are immutable.
type UpdateSupplierRequest struct {
	ID         string               `json:"-"`
	Code       *string              `json:"code,omitempty"`
	Name       *string              `json:"name,omitempty"`
	Status     *string              `json:"status,omitempty"`
	Notes      *string              `json:"notes,omitempty"`
	TaxNumber  *string              `json:"tax_number,omitempty"`
	TaxName    *string              `json:"tax_name,omitempty"`
	TaxAddress *string              `json:"tax_address,omitempty"`
	TaxDate    *time.Time           `json:"tax_date,omitempty"`
	Addresses  []party.AddressInput `json:"addresses"`
	Contacts   []party.ContactInput `json:"contacts"`
}

type ListSupplierRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Code      string
	Status    string
}

type ListSupplierFilter struct {
	Name   string
	Code   string
	Status string
}

type ListSupplierResponse struct {
	pagination.PageInfo
	Suppliers []Supplier `json:"suppliers"`
}

type Service interface {
	CreateAll(ctx context.Context, req CreateSupplierRequest) (SupplierDetail, error)
	UpdateAll(ctx context.Context, req UpdateSupplierRequest) (SupplierDetail, error)
	GetByID(ctx context.Context, id string) (SupplierDetail, error)
	List(ctx context.Context, req ListSupplierRequest) (ListSupplierResponse, error)
	Delete(ctx context.Context, id string) error
}
