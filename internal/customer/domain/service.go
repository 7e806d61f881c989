package domain

import (
	"context"
	"time"

	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/pkg/db/pagination"
)

type CreateCustomerRequest struct {
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

// UpdateCustomerRequest is a sparse aggregate patch: absent root fields stay
// untouched, children with ids are patched and children without are
// appended. A submitted code is ignored; codes are immutable.
type UpdateCustomerRequest struct {
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

type ListCustomerRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Code      string
	Status    string
}

type ListCustomerFilter struct {
	Name   string
	Code   string
	Status string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type Service interface {
	CreateAll(ctx context.Context, req CreateCustomerRequest) (CustomerDetail, error)
	UpdateAll(ctx context.Context, req UpdateCustomerRequest) (CustomerDetail, error)
	GetByID(ctx context.Context, id string) (CustomerDetail, error)
	List(ctx context.Context, req ListCustomerRequest) (ListCustomerResponse, error)
	Delete(ctx context.Context, id string) error
}
