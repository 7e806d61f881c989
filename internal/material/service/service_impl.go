package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/material/domain"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/sequence"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const codeKind = "material"

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Settings *config.SettingsHolder
	Repo     domain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	settings *config.SettingsHolder
	repo     domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("material.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		settings: p.Settings,
		repo:     p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMaterialRequest) (domain.Material, error) {
	actor, ok := actorcontext.ActorIDFromContext(ctx)
	if !ok || actor == 0 {
		return domain.Material{}, domain.ErrMissingActor
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Material{}, domain.ErrInvalidName
	}

	status := party.StatusActive
	if req.Status != nil {
		status = party.Status(*req.Status)
		if !status.IsValid() {
			return domain.Material{}, domain.ErrInvalidStatus
		}
	}

	settings := s.settings.Get()
	now := s.clock.Now()
	material := domain.Material{
		ID:          s.genID.Generate(),
		Name:        name,
		Description: req.Description,
		UOM:         req.UOM,
		UnitPrice:   req.UnitPrice,
		Status:      status,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, settings.UpdateTimeout())
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := sequence.NextCode(ctx, tx, codeKind, settings.CodePrefix(codeKind), settings.CodeWidth)
		if err != nil {
			return err
		}
		exists, err := s.repo.ExistsByCode(ctx, tx, code)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrCodeConflict
		}
		material.Code = code
		return s.repo.Insert(ctx, tx, &material)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Material{}, domain.ErrCodeConflict
		}
		if errors.Is(err, domain.ErrCodeConflict) {
			return domain.Material{}, err
		}
		s.log.Error("create material failed", zap.Error(err))
		return domain.Material{}, err
	}
	return material, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateMaterialRequest) (domain.Material, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Material{}, err
	}

	cols := map[string]any{"updated_at": s.clock.Now()}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Material{}, domain.ErrInvalidName
		}
		cols["name"] = name
	}
	if req.Description != nil {
		cols["description"] = *req.Description
	}
	if req.UOM != nil {
		cols["uom"] = *req.UOM
	}
	if req.UnitPrice != nil {
		cols["unit_price"] = *req.UnitPrice
	}
	if req.Status != nil {
		if !party.Status(*req.Status).IsValid() {
			return domain.Material{}, domain.ErrInvalidStatus
		}
		cols["status"] = *req.Status
	}

	affected, err := s.repo.UpdateColumns(ctx, s.db, id, cols)
	if err != nil {
		s.log.Error("update material failed", zap.Error(err))
		return domain.Material{}, err
	}
	if affected == 0 {
		return domain.Material{}, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Material{}, err
	}
	if item == nil {
		return domain.Material{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Material, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Material{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Material{}, err
	}
	if item == nil {
		return domain.Material{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListMaterialRequest) (domain.ListMaterialResponse, error) {
	filter := domain.ListMaterialFilter{
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
		return domain.ListMaterialResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(material *domain.Material) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        material.ID.String(),
			CreatedAt: material.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	materials := make([]domain.Material, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		materials = append(materials, *item)
	}

	resp := domain.ListMaterialResponse{Materials: materials}
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
