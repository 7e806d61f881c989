package service

import (
	"context"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/driver/domain"
	"github.com/armadalink/backoffice/internal/party"
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
		log:   p.Log.Named("driver.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDriverRequest) (domain.Driver, error) {
	actor, ok := actorcontext.ActorIDFromContext(ctx)
	if !ok || actor == 0 {
		return domain.Driver{}, domain.ErrMissingActor
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Driver{}, domain.ErrInvalidName
	}
	license := strings.TrimSpace(req.LicenseNumber)
	if license == "" || strings.TrimSpace(req.LicenseType) == "" {
		return domain.Driver{}, domain.ErrInvalidLicense
	}

	status := party.StatusActive
	if req.Status != nil {
		status = party.Status(*req.Status)
		if !status.IsValid() {
			return domain.Driver{}, domain.ErrInvalidStatus
		}
	}

	var employeeID *snowflake.ID
	if req.EmployeeID != nil {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.EmployeeID))
		if err != nil || parsed == 0 {
			return domain.Driver{}, domain.ErrInvalidID
		}
		employeeID = &parsed
	}

	now := s.clock.Now()
	driver := domain.Driver{
		ID:            s.genID.Generate(),
		EmployeeID:    employeeID,
		Name:          name,
		LicenseNumber: license,
		LicenseType:   strings.TrimSpace(req.LicenseType),
		LicenseExpiry: req.LicenseExpiry,
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		Status:        status,
		CreatedBy:     actor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &driver); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Driver{}, domain.ErrLicenseConflict
		}
		s.log.Error("create driver failed", zap.Error(err))
		return domain.Driver{}, err
	}
	return driver, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateDriverRequest) (domain.Driver, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Driver{}, err
	}

	cols := map[string]any{"updated_at": s.clock.Now()}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Driver{}, domain.ErrInvalidName
		}
		cols["name"] = name
	}
	if req.LicenseNumber != nil {
		license := strings.TrimSpace(*req.LicenseNumber)
		if license == "" {
			return domain.Driver{}, domain.ErrInvalidLicense
		}
		cols["license_number"] = license
	}
	if req.LicenseType != nil {
		cols["license_type"] = *req.LicenseType
	}
	if req.LicenseExpiry != nil {
		cols["license_expiry"] = *req.LicenseExpiry
	}
	if req.PhoneNumber != nil {
		cols["phone_number"] = *req.PhoneNumber
	}
	if req.Status != nil {
		if !party.Status(*req.Status).IsValid() {
			return domain.Driver{}, domain.ErrInvalidStatus
		}
		cols["status"] = *req.Status
	}

	affected, err := s.repo.UpdateColumns(ctx, s.db, id, cols)
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Driver{}, domain.ErrLicenseConflict
		}
		s.log.Error("update driver failed", zap.Error(err))
		return domain.Driver{}, err
	}
	if affected == 0 {
		return domain.Driver{}, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Driver{}, err
	}
	if item == nil {
		return domain.Driver{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Driver, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Driver{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Driver{}, err
	}
	if item == nil {
		return domain.Driver{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListDriverRequest) (domain.ListDriverResponse, error) {
	filter := domain.ListDriverFilter{
		Name:   strings.TrimSpace(req.Name),
		Status: strings.TrimSpace(req.Status),
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
		return domain.ListDriverResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(driver *domain.Driver) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        driver.ID.String(),
			CreatedAt: driver.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	drivers := make([]domain.Driver, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		drivers = append(drivers, *item)
	}

	resp := domain.ListDriverResponse{Drivers: drivers}
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
