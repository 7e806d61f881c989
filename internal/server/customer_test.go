package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	customerdomain "github.com/armadalink/backoffice/internal/customer/domain"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type fakeCustomerService struct {
	createErr error
	updateErr error
	deleteErr error
	detail    customerdomain.CustomerDetail
}

func (f *fakeCustomerService) CreateAll(ctx context.Context, req customerdomain.CreateCustomerRequest) (customerdomain.CustomerDetail, error) {
	_ = ctx
	_ = req
	if f.createErr != nil {
		return customerdomain.CustomerDetail{}, f.createErr
	}
	return f.detail, nil
}

func (f *fakeCustomerService) UpdateAll(ctx context.Context, req customerdomain.UpdateCustomerRequest) (customerdomain.CustomerDetail, error) {
	_ = ctx
	_ = req
	if f.updateErr != nil {
		return customerdomain.CustomerDetail{}, f.updateErr
	}
	return f.detail, nil
}

func (f *fakeCustomerService) GetByID(ctx context.Context, id string) (customerdomain.CustomerDetail, error) {
	_ = ctx
	_ = id
	return f.detail, nil
}

func (f *fakeCustomerService) List(ctx context.Context, req customerdomain.ListCustomerRequest) (customerdomain.ListCustomerResponse, error) {
	_ = ctx
	_ = req
	return customerdomain.ListCustomerResponse{}, nil
}

func (f *fakeCustomerService) Delete(ctx context.Context, id string) error {
	_ = ctx
	_ = id
	return f.deleteErr
}

func newCustomerTestServer(svc customerdomain.Service, audit *fakeAuditService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{customerSvc: svc, auditSvc: audit}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/api/customers", srv.CreateCustomer)
	router.PATCH("/api/customers/:id", srv.UpdateCustomer)
	router.DELETE("/api/customers/:id", srv.DeleteCustomer)
	return router
}

func TestCreateCustomerEnvelopeAndAudit(t *testing.T) {
	audit := &fakeAuditService{}
	detail := customerdomain.CustomerDetail{
		Customer: customerdomain.Customer{
			ID:   snowflake.ID(42),
			Code: "CUST-000001",
			Name: "PT Sinar Jaya",
		},
	}
	router := newCustomerTestServer(&fakeCustomerService{detail: detail}, audit)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(`{"name":"PT Sinar Jaya"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Data customerdomain.CustomerDetail `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data.Code != "CUST-000001" {
		t.Fatalf("expected code in envelope, got %q", body.Data.Code)
	}
	if len(audit.actions) != 1 || audit.actions[0] != "customer.create" {
		t.Fatalf("expected customer.create audit entry, got %v", audit.actions)
	}
}

func TestCreateCustomerMalformedBody(t *testing.T) {
	router := newCustomerTestServer(&fakeCustomerService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCreateCustomerMissingActorMapsTo401(t *testing.T) {
	router := newCustomerTestServer(&fakeCustomerService{createErr: customerdomain.ErrMissingActor}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(`{"name":"PT Sinar Jaya"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestCreateCustomerCodeConflictMapsTo409(t *testing.T) {
	router := newCustomerTestServer(&fakeCustomerService{createErr: customerdomain.ErrCodeConflict}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(`{"name":"PT Sinar Jaya"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestUpdateCustomerChildNotFoundMapsTo404(t *testing.T) {
	router := newCustomerTestServer(&fakeCustomerService{updateErr: party.ErrChildNotFound}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/customers/42", bytes.NewBufferString(`{"contacts":[{"id":"99","name":"Ghost"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestUpdateCustomerMissingChildFieldMapsTo400(t *testing.T) {
	vErr := party.AddressInput{}.ValidateForInsert()
	router := newCustomerTestServer(&fakeCustomerService{updateErr: vErr}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/customers/42", bytes.NewBufferString(`{"addresses":[{}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error.Type != "validation_error" {
		t.Fatalf("expected validation_error, got %s", body.Error.Type)
	}
	if len(body.Error.Errors) != 1 || body.Error.Errors[0].Field != "address_type" {
		t.Fatalf("expected address_type field error, got %+v", body.Error.Errors)
	}
}

func TestDeleteCustomerNotFoundMapsTo404(t *testing.T) {
	router := newCustomerTestServer(&fakeCustomerService{deleteErr: customerdomain.ErrNotFound}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCreateCustomerInvalidEnumMapsTo400(t *testing.T) {
	svc := &fakeCustomerService{createErr: &party.ValidationError{Field: "contact_type", Invalid: true}}
	router := newCustomerTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(`{"name":"PT Sinar Jaya"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Type   string `json:"type"`
			Errors []struct {
				Field string `json:"field"`
				Code  string `json:"code"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Error.Errors) != 1 || body.Error.Errors[0].Field != "contact_type" {
		t.Fatalf("expected contact_type field error, got %+v", body.Error.Errors)
	}
	if body.Error.Errors[0].Code != "invalid_value" {
		t.Fatalf("expected invalid_value code, got %s", body.Error.Errors[0].Code)
	}
}
