package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/employee/domain"
	"github.com/armadalink/backoffice/internal/party"
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
		log:   p.Log.Named("employee.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateEmployeeRequest) (domain.Employee, error) {
	actor, ok := actorcontext.ActorIDFromContext(ctx)
	if !ok || actor == 0 {
		return domain.Employee{}, domain.ErrMissingActor
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Employee{}, domain.ErrInvalidName
	}
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return domain.Employee{}, domain.ErrInvalidPhone
	}

	status := party.StatusActive
	if req.Status != nil {
		status = party.Status(*req.Status)
		if !status.IsValid() {
			return domain.Employee{}, domain.ErrInvalidStatus
		}
	}

	now := s.clock.Now()
	employee := domain.Employee{
		ID:          s.genID.Generate(),
		Name:        name,
		Email:       req.Email,
		PhoneNumber: phone,
		Position:    req.Position,
		Status:      status,
		JoinDate:    req.JoinDate,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &employee); err != nil {
		s.log.Error("create employee failed", zap.Error(err))
		return domain.Employee{}, err
	}
	return employee, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateEmployeeRequest) (domain.Employee, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Employee{}, err
	}

	cols := map[string]any{"updated_at": s.clock.Now()}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Employee{}, domain.ErrInvalidName
		}
		cols["name"] = name
	}
	if req.Email != nil {
		cols["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		cols["phone_number"] = *req.PhoneNumber
	}
	if req.Position != nil {
		cols["position"] = *req.Position
	}
	if req.Status != nil {
		if !party.Status(*req.Status).IsValid() {
			return domain.Employee{}, domain.ErrInvalidStatus
		}
		cols["status"] = *req.Status
	}
	if req.JoinDate != nil {
		cols["join_date"] = *req.JoinDate
	}

	affected, err := s.repo.UpdateColumns(ctx, s.db, id, cols)
	if err != nil {
		s.log.Error("update employee failed", zap.Error(err))
		return domain.Employee{}, err
	}
	if affected == 0 {
		return domain.Employee{}, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Employee{}, err
	}
	if item == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Employee{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Employee{}, err
	}
	if item == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListEmployeeRequest) (domain.ListEmployeeResponse, error) {
	filter := domain.ListEmployeeFilter{
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
		return domain.ListEmployeeResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(employee *domain.Employee) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        employee.ID.String(),
			CreatedAt: employee.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	employees := make([]domain.Employee, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		employees = append(employees, *item)
	}

	resp := domain.ListEmployeeResponse{Employees: employees}
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
	if err := s.repo.Delete(ctx, s.db, parsed); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("delete employee failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
