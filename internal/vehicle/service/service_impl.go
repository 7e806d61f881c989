package service

import (
	"context"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/vehicle/domain"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("vehicle.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateVehicleRequest) (domain.Vehicle, error) {
	actor, ok := actorcontext.ActorIDFromContext(ctx)
	if !ok || actor == 0 {
		return domain.Vehicle{}, domain.ErrMissingActor
	}

	plate := strings.ToUpper(strings.TrimSpace(req.PlateNumber))
	if plate == "" {
		return domain.Vehicle{}, domain.ErrInvalidPlate
	}
	vehicleType := strings.TrimSpace(req.VehicleType)
	if vehicleType == "" {
		return domain.Vehicle{}, domain.ErrInvalidType
	}

	status := party.StatusActive
	if req.Status != nil {
		status = party.Status(*req.Status)
		if !status.IsValid() {
			return domain.Vehicle{}, domain.ErrInvalidStatus
		}
	}

	now := s.clock.Now()
	vehicle := domain.Vehicle{
		ID:          s.genID.Generate(),
		PlateNumber: plate,
		VehicleType: vehicleType,
		Brand:       req.Brand,
		Year:        req.Year,
		CapacityKg:  req.CapacityKg,
		Status:      status,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &vehicle); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Vehicle{}, domain.ErrPlateConflict
		}
		s.log.Error("create vehicle failed", zap.Error(err))
		return domain.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateVehicleRequest) (domain.Vehicle, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Vehicle{}, err
	}

	cols := map[string]any{"updated_at": s.clock.Now()}
	if req.PlateNumber != nil {
		plate := strings.ToUpper(strings.TrimSpace(*req.PlateNumber))
		if plate == "" {
			return domain.Vehicle{}, domain.ErrInvalidPlate
		}
		cols["plate_number"] = plate
	}
	if req.VehicleType != nil {
		vehicleType := strings.TrimSpace(*req.VehicleType)
		if vehicleType == "" {
			return domain.Vehicle{}, domain.ErrInvalidType
		}
		cols["vehicle_type"] = vehicleType
	}
	if req.Brand != nil {
		cols["brand"] = *req.Brand
	}
	if req.Year != nil {
		cols["year"] = *req.Year
	}
	if req.CapacityKg != nil {
		cols["capacity_kg"] = *req.CapacityKg
	}
	if req.Status != nil {
		if !party.Status(*req.Status).IsValid() {
			return domain.Vehicle{}, domain.ErrInvalidStatus
		}
		cols["status"] = *req.Status
	}

	affected, err := s.repo.UpdateColumns(ctx, s.db, id, cols)
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Vehicle{}, domain.ErrPlateConflict
		}
		s.log.Error("update vehicle failed", zap.Error(err))
		return domain.Vehicle{}, err
	}
	if affected == 0 {
		return domain.Vehicle{}, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if item == nil {
		return domain.Vehicle{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Vehicle, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Vehicle{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if item == nil {
		return domain.Vehicle{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListVehicleRequest) (domain.ListVehicleResponse, error) {
	filter := domain.ListVehicleFilter{
		PlateNumber: strings.TrimSpace(req.PlateNumber),
		VehicleType: strings.TrimSpace(req.VehicleType),
		Status:      strings.TrimSpace(req.Status),
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListVehicleResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(vehicle *domain.Vehicle) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        vehicle.ID.String(),
			CreatedAt: vehicle.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	vehicles := make([]domain.Vehicle, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		vehicles = append(vehicles, *item)
	}

	resp := domain.ListVehicleResponse{Vehicles: vehicles}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
