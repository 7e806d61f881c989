package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/driver/domain"
	"github.com/armadalink/backoffice/internal/driver/repository"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Driver{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	svc := New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
	return svc, node
}

func actorCtx(node *snowflake.Node) context.Context {
	return actorcontext.WithActorID(context.Background(), node.Generate())
}

func validCreateRequest() domain.CreateDriverRequest {
	return domain.CreateDriverRequest{
		Name:          "Agus Wijaya",
		LicenseNumber: "SIM-B2-0001",
		LicenseType:   "B2",
		PhoneNumber:   "+62811000444",
	}
}

func TestCreateDriver(t *testing.T) {
	svc, node := newTestService(t)

	driver, err := svc.Create(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if driver.Status != "Active" {
		t.Fatalf("expected Active default, got %s", driver.Status)
	}
	if driver.LicenseNumber != "SIM-B2-0001" {
		t.Fatalf("unexpected license: %s", driver.LicenseNumber)
	}
}

func TestCreateDuplicateLicense(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Create(actorCtx(node), validCreateRequest()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	req := validCreateRequest()
	req.Name = "Orang Lain"
	_, err := svc.Create(actorCtx(node), req)
	if err != domain.ErrLicenseConflict {
		t.Fatalf("expected ErrLicenseConflict, got %v", err)
	}
}

func TestCreateMissingLicense(t *testing.T) {
	svc, node := newTestService(t)

	req := validCreateRequest()
	req.LicenseNumber = "  "
	_, err := svc.Create(actorCtx(node), req)
	if err != domain.ErrInvalidLicense {
		t.Fatalf("expected ErrInvalidLicense, got %v", err)
	}
}

func TestCreateBadEmployeeReference(t *testing.T) {
	svc, node := newTestService(t)

	bad := "not-a-snowflake"
	req := validCreateRequest()
	req.EmployeeID = &bad
	_, err := svc.Create(actorCtx(node), req)
	if err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestUpdateSparsePatch(t *testing.T) {
	svc, node := newTestService(t)

	created, err := svc.Create(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	phone := "+62811999888"
	updated, err := svc.Update(context.Background(), domain.UpdateDriverRequest{
		ID:          created.ID.String(),
		PhoneNumber: &phone,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PhoneNumber != phone {
		t.Fatalf("expected patched phone, got %s", updated.PhoneNumber)
	}
	if updated.LicenseNumber != created.LicenseNumber {
		t.Fatalf("expected license untouched, got %s", updated.LicenseNumber)
	}
}
