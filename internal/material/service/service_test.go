package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/material/domain"
	"github.com/armadalink/backoffice/internal/material/repository"
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
	if err := dbConn.AutoMigrate(&domain.Material{}); err != nil {
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
		DB:       dbConn,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Settings: config.NewStaticHolder(config.DefaultSettings()),
		Repo:     repository.Provide(),
	})
	return svc, node
}

func actorCtx(node *snowflake.Node) context.Context {
	return actorcontext.WithActorID(context.Background(), node.Generate())
}

func strPtr(s string) *string { return &s }

func TestCreateAssignsSequentialCodes(t *testing.T) {
	svc, node := newTestService(t)

	uom := "kg"
	first, err := svc.Create(actorCtx(node), domain.CreateMaterialRequest{Name: "Semen Portland", UOM: &uom})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.Code != "MTRL-000001" {
		t.Fatalf("expected MTRL-000001, got %s", first.Code)
	}

	second, err := svc.Create(actorCtx(node), domain.CreateMaterialRequest{Name: "Pasir Silika"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.Code != "MTRL-000002" {
		t.Fatalf("expected MTRL-000002, got %s", second.Code)
	}
}

func TestCreateRequiresActorAndName(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Create(context.Background(), domain.CreateMaterialRequest{Name: "Semen"}); err != domain.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
	if _, err := svc.Create(actorCtx(node), domain.CreateMaterialRequest{Name: "   "}); err != domain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestUpdateSparsePatch(t *testing.T) {
	svc, node := newTestService(t)

	price := 85000.0
	created, err := svc.Create(actorCtx(node), domain.CreateMaterialRequest{
		Name:      "Semen Portland",
		UnitPrice: &price,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := 90000.0
	updated, err := svc.Update(context.Background(), domain.UpdateMaterialRequest{
		ID:        created.ID.String(),
		UnitPrice: &newPrice,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.UnitPrice == nil || *updated.UnitPrice != 90000.0 {
		t.Fatalf("expected patched price, got %v", updated.UnitPrice)
	}
	if updated.Name != "Semen Portland" {
		t.Fatalf("expected untouched name, got %s", updated.Name)
	}
	if updated.Code != created.Code {
		t.Fatalf("code must be immutable, got %s", updated.Code)
	}
}

func TestUpdateUnknownMaterial(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.Update(context.Background(), domain.UpdateMaterialRequest{
		ID:   node.Generate().String(),
		Name: strPtr("Ghost"),
	})
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc, node := newTestService(t)

	created, err := svc.Create(actorCtx(node), domain.CreateMaterialRequest{Name: "Batu Split"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID.String()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID.String()); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
