package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	customerdomain "github.com/armadalink/backoffice/internal/customer/domain"
	customerrepo "github.com/armadalink/backoffice/internal/customer/repository"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/quotation/domain"
	"github.com/armadalink/backoffice/internal/quotation/repository"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Quotation{}, &customerdomain.Customer{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := dbConn.Exec(`CREATE TABLE code_sequences (kind TEXT PRIMARY KEY, last_seq BIGINT NOT NULL DEFAULT 0)`).Error; err != nil {
		t.Fatalf("failed to create sequence table: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	svc := New(Params{
		DB:           dbConn,
		Log:          zap.NewNop(),
		GenID:        node,
		Clock:        clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Settings:     config.NewStaticHolder(config.DefaultSettings()),
		Repo:         repository.Provide(),
		CustomerRepo: customerrepo.Provide(),
	})
	return svc, dbConn, node
}

func seedCustomer(t *testing.T, dbConn *gorm.DB, node *snowflake.Node) snowflake.ID {
	t.Helper()

	customer := customerdomain.Customer{
		ID:        node.Generate(),
		Code:      "CUST-000001",
		Name:      "PT Sinar Jaya",
		Status:    party.StatusActive,
		CreatedBy: node.Generate(),
		Metadata:  datatypes.JSONMap{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := dbConn.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer.ID
}

func actorCtx(node *snowflake.Node) context.Context {
	return actorcontext.WithActorID(context.Background(), node.Generate())
}

func TestCreateAllocatesNumberAndDrafts(t *testing.T) {
	svc, dbConn, node := newTestService(t)
	customerID := seedCustomer(t, dbConn, node)

	quotation, err := svc.Create(actorCtx(node), domain.CreateQuotationRequest{
		CustomerID:  customerID.String(),
		Origin:      "Jakarta",
		Destination: "Surabaya",
		Price:       4500000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if quotation.Number != "QUOT-000001" {
		t.Fatalf("expected QUOT-000001, got %s", quotation.Number)
	}
	if quotation.Status != domain.StatusDraft {
		t.Fatalf("expected Draft, got %s", quotation.Status)
	}
}

func TestCreateUnknownCustomer(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.Create(actorCtx(node), domain.CreateQuotationRequest{
		CustomerID:  node.Generate().String(),
		Origin:      "Jakarta",
		Destination: "Medan",
		Price:       9000000,
	})
	if err != domain.ErrCustomerGone {
		t.Fatalf("expected ErrCustomerGone, got %v", err)
	}
}

func TestCreateRejectsEmptyRoute(t *testing.T) {
	svc, dbConn, node := newTestService(t)
	customerID := seedCustomer(t, dbConn, node)

	_, err := svc.Create(actorCtx(node), domain.CreateQuotationRequest{
		CustomerID:  customerID.String(),
		Origin:      "  ",
		Destination: "Surabaya",
		Price:       4500000,
	})
	if err != domain.ErrInvalidRoute {
		t.Fatalf("expected ErrInvalidRoute, got %v", err)
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc, dbConn, node := newTestService(t)
	customerID := seedCustomer(t, dbConn, node)

	_, err := svc.Create(actorCtx(node), domain.CreateQuotationRequest{
		CustomerID:  customerID.String(),
		Origin:      "Jakarta",
		Destination: "Surabaya",
		Price:       -1,
	})
	if err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestUpdateStatusTransition(t *testing.T) {
	svc, dbConn, node := newTestService(t)
	customerID := seedCustomer(t, dbConn, node)

	created, err := svc.Create(actorCtx(node), domain.CreateQuotationRequest{
		CustomerID:  customerID.String(),
		Origin:      "Jakarta",
		Destination: "Bandung",
		Price:       1500000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sent := string(domain.StatusSent)
	updated, err := svc.Update(context.Background(), domain.UpdateQuotationRequest{
		ID:     created.ID.String(),
		Status: &sent,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusSent {
		t.Fatalf("expected Sent, got %s", updated.Status)
	}
	if updated.Number != created.Number {
		t.Fatalf("number must be immutable, got %s", updated.Number)
	}

	bogus := "Archived"
	_, err = svc.Update(context.Background(), domain.UpdateQuotationRequest{
		ID:     created.ID.String(),
		Status: &bogus,
	})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListFiltersByCustomer(t *testing.T) {
	svc, dbConn, node := newTestService(t)
	customerA := seedCustomer(t, dbConn, node)

	customerB := customerdomain.Customer{
		ID:        node.Generate(),
		Code:      "CUST-000002",
		Name:      "PT Kedua",
		Status:    party.StatusActive,
		CreatedBy: node.Generate(),
		Metadata:  datatypes.JSONMap{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := dbConn.Create(&customerB).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	for _, cid := range []snowflake.ID{customerA, customerA, customerB.ID} {
		if _, err := svc.Create(actorCtx(node), domain.CreateQuotationRequest{
			CustomerID:  cid.String(),
			Origin:      "Jakarta",
			Destination: "Semarang",
			Price:       2000000,
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	resp, err := svc.List(context.Background(), domain.ListQuotationRequest{CustomerID: customerA.String()})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Quotations) != 2 {
		t.Fatalf("expected 2 quotations for customer, got %d", len(resp.Quotations))
	}
}
