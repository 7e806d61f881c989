package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/region"
	regiondomain "github.com/armadalink/backoffice/internal/region/domain"
	"github.com/armadalink/backoffice/internal/supplier/domain"
	"github.com/armadalink/backoffice/internal/supplier/repository"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&domain.Supplier{},
		&party.Address{},
		&party.Contact{},
		&regiondomain.Country{},
		&regiondomain.Province{},
		&regiondomain.Regency{},
		&regiondomain.District{},
	); err != nil {
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
		DB:         dbConn,
		Log:        zap.NewNop(),
		GenID:      node,
		Clock:      clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Settings:   config.NewStaticHolder(config.DefaultSettings()),
		Repo:       repository.Provide(),
		RegionRepo: region.NewRepository(dbConn),
	})
	return svc, node
}

func actorCtx(node *snowflake.Node) context.Context {
	return actorcontext.WithActorID(context.Background(), node.Generate())
}

func TestCreateAllAssignsSupplierCode(t *testing.T) {
	svc, node := newTestService(t)

	detail, err := svc.CreateAll(actorCtx(node), domain.CreateSupplierRequest{
		Name: "CV Sumber Batu",
		Addresses: []party.AddressInput{{
			AddressType:      strPtr("Warehouse"),
			AddressLine1:     strPtr("Jl. Raya Bogor KM 30"),
			CountryCode:      strPtr("ID"),
			ProvinceCode:     strPtr("32"),
			IsPrimaryAddress: boolPtr(true),
		}},
		Contacts: []party.ContactInput{{
			ContactType:      strPtr("Primary"),
			Name:             strPtr("Sari"),
			PhoneNumber:      strPtr("+62812000222"),
			FaxNumber:        strPtr("021-555123"),
			IsPrimaryContact: boolPtr(true),
		}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.Code != "SUPP-000001" {
		t.Fatalf("expected SUPP-000001, got %s", detail.Code)
	}
	if detail.Status != party.StatusActive {
		t.Fatalf("expected Active default, got %s", detail.Status)
	}
	if len(detail.Addresses) != 1 || len(detail.Contacts) != 1 {
		t.Fatalf("expected 1 address and 1 contact, got %d/%d", len(detail.Addresses), len(detail.Contacts))
	}
	if detail.Contacts[0].FaxNumber != nil {
		t.Fatalf("fax is vendor-only, got %v", *detail.Contacts[0].FaxNumber)
	}
}

func TestUpdateAllKeepsSupplierCodeImmutable(t *testing.T) {
	svc, node := newTestService(t)
	ctx := actorCtx(node)

	created, err := svc.CreateAll(ctx, domain.CreateSupplierRequest{Name: "CV Sumber Batu"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateAll(ctx, domain.UpdateSupplierRequest{
		ID:   created.ID.String(),
		Code: strPtr("SUPP-999999"),
		Name: strPtr("CV Sumber Batu Abadi"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Code != created.Code {
		t.Fatalf("code must stay %s, got %s", created.Code, updated.Code)
	}
	if updated.Name != "CV Sumber Batu Abadi" {
		t.Fatalf("name patch lost: %s", updated.Name)
	}
}

func TestUpdateAllAppendsSupplierAddress(t *testing.T) {
	svc, node := newTestService(t)
	ctx := actorCtx(node)

	created, err := svc.CreateAll(ctx, domain.CreateSupplierRequest{
		Name: "CV Sumber Batu",
		Addresses: []party.AddressInput{{
			AddressType:      strPtr("HeadOffice"),
			AddressLine1:     strPtr("Jl. Merdeka 1"),
			CountryCode:      strPtr("ID"),
			IsPrimaryAddress: boolPtr(true),
		}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateAll(ctx, domain.UpdateSupplierRequest{
		ID: created.ID.String(),
		Addresses: []party.AddressInput{{
			AddressType:      strPtr("Warehouse"),
			AddressLine1:     strPtr("Jl. Industri 7"),
			CountryCode:      strPtr("ID"),
			IsPrimaryAddress: boolPtr(false),
		}},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Addresses) != 2 {
		t.Fatalf("expected appended address, got %d", len(updated.Addresses))
	}
}

func TestListSuppliersFiltersByName(t *testing.T) {
	svc, node := newTestService(t)
	ctx := actorCtx(node)

	for _, name := range []string{"CV Sumber Batu", "CV Sumber Pasir", "PT Lain"} {
		if _, err := svc.CreateAll(ctx, domain.CreateSupplierRequest{Name: name}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	list, err := svc.List(ctx, domain.ListSupplierRequest{Name: "Sumber"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list.Suppliers) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(list.Suppliers))
	}
}
