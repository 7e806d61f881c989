package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/employee/domain"
	"github.com/armadalink/backoffice/internal/employee/repository"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Employee{}); err != nil {
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

func TestCreateEmployeeDefaultsToActive(t *testing.T) {
	svc, node := newTestService(t)

	emp, err := svc.Create(actorCtx(node), domain.CreateEmployeeRequest{
		Name:        "Andi Wijaya",
		PhoneNumber: "+62813000333",
		Position:    strPtr("Dispatcher"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.Status != party.StatusActive {
		t.Fatalf("expected Active default, got %s", emp.Status)
	}
	if emp.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestCreateEmployeeRequiresActorAndFields(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Create(context.Background(), domain.CreateEmployeeRequest{
		Name:        "Andi",
		PhoneNumber: "+62813000333",
	}); err != domain.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
	if _, err := svc.Create(actorCtx(node), domain.CreateEmployeeRequest{
		Name:        "  ",
		PhoneNumber: "+62813000333",
	}); err != domain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.Create(actorCtx(node), domain.CreateEmployeeRequest{
		Name: "Andi",
	}); err != domain.ErrInvalidPhone {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestUpdateEmployeeSparsePatch(t *testing.T) {
	svc, node := newTestService(t)
	ctx := actorCtx(node)

	emp, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name:        "Andi Wijaya",
		PhoneNumber: "+62813000333",
		Position:    strPtr("Dispatcher"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, domain.UpdateEmployeeRequest{
		ID:       emp.ID.String(),
		Position: strPtr("Fleet Manager"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Position == nil || *updated.Position != "Fleet Manager" {
		t.Fatalf("position patch lost: %v", updated.Position)
	}
	if updated.Name != emp.Name || updated.PhoneNumber != emp.PhoneNumber {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateEmployeeRejectsUnknownStatus(t *testing.T) {
	svc, node := newTestService(t)
	ctx := actorCtx(node)

	emp, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name:        "Andi Wijaya",
		PhoneNumber: "+62813000333",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(ctx, domain.UpdateEmployeeRequest{
		ID:     emp.ID.String(),
		Status: strPtr("Retired"),
	}); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDeleteEmployeeThenGetNotFound(t *testing.T) {
	svc, node := newTestService(t)
	ctx := actorCtx(node)

	emp, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name:        "Andi Wijaya",
		PhoneNumber: "+62813000333",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, emp.ID.String()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, emp.ID.String()); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
