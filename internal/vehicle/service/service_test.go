package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/vehicle/domain"
	"github.com/armadalink/backoffice/internal/vehicle/repository"
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
	if err := dbConn.AutoMigrate(&domain.Vehicle{}); err != nil {
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

func TestCreateNormalizesPlate(t *testing.T) {
	svc, node := newTestService(t)

	vehicle, err := svc.Create(actorCtx(node), domain.CreateVehicleRequest{
		PlateNumber: "  b 1234 xyz ",
		VehicleType: "Truck",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if vehicle.PlateNumber != "B 1234 XYZ" {
		t.Fatalf("expected uppercased plate, got %q", vehicle.PlateNumber)
	}
}

func TestCreateDuplicatePlate(t *testing.T) {
	svc, node := newTestService(t)

	req := domain.CreateVehicleRequest{PlateNumber: "B 1234 XYZ", VehicleType: "Truck"}
	if _, err := svc.Create(actorCtx(node), req); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	req.PlateNumber = "b 1234 xyz"
	_, err := svc.Create(actorCtx(node), req)
	if err != domain.ErrPlateConflict {
		t.Fatalf("expected ErrPlateConflict, got %v", err)
	}
}

func TestUpdatePlateConflict(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Create(actorCtx(node), domain.CreateVehicleRequest{
		PlateNumber: "B 1111 AA",
		VehicleType: "Truck",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(actorCtx(node), domain.CreateVehicleRequest{
		PlateNumber: "B 2222 BB",
		VehicleType: "Pickup",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	taken := "B 1111 AA"
	_, err = svc.Update(context.Background(), domain.UpdateVehicleRequest{
		ID:          second.ID.String(),
		PlateNumber: &taken,
	})
	if err != domain.ErrPlateConflict {
		t.Fatalf("expected ErrPlateConflict, got %v", err)
	}
}

func TestCreateRejectsEmptyPlate(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.Create(actorCtx(node), domain.CreateVehicleRequest{
		PlateNumber: "   ",
		VehicleType: "Truck",
	})
	if err != domain.ErrInvalidPlate {
		t.Fatalf("expected ErrInvalidPlate, got %v", err)
	}
}
