package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	customerdomain "github.com/armadalink/backoffice/internal/customer/domain"
	"github.com/armadalink/backoffice/internal/quotation/domain"
	"github.com/armadalink/backoffice/internal/sequence"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const codeKind = "quotation"

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Settings     *config.SettingsHolder
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	settings     *config.SettingsHolder
	repo         domain.Repository
	customerRepo customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("quotation.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		settings:     p.Settings,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateQuotationRequest) (domain.Quotation, error) {
	actor, ok := actorcontext.ActorIDFromContext(ctx)
	if !ok || actor == 0 {
		return domain.Quotation{}, domain.ErrMissingActor
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.Quotation{}, domain.ErrCustomerGone
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		return domain.Quotation{}, domain.ErrInvalidRoute
	}
	if req.Price < 0 {
		return domain.Quotation{}, domain.ErrInvalidPrice
	}

	settings := s.settings.Get()
	now := s.clock.Now()
	quotation := domain.Quotation{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		Origin:      origin,
		Destination: destination,
		Price:       req.Price,
		Status:      domain.StatusDraft,
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, settings.UpdateTimeout())
	defer cancel()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := s.customerRepo.FindByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrCustomerGone
		}

		number, err := sequence.NextCode(ctx, tx, codeKind, settings.CodePrefix(codeKind), settings.CodeWidth)
		if err != nil {
			return err
		}
		exists, err := s.repo.ExistsByNumber(ctx, tx, number)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrNumberConflict
		}
		quotation.Number = number
		return s.repo.Insert(ctx, tx, &quotation)
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerGone) || errors.Is(err, domain.ErrNumberConflict) {
			return domain.Quotation{}, err
		}
		if db.IsDuplicateKeyErr(err) {
			return domain.Quotation{}, domain.ErrNumberConflict
		}
		s.log.Error("create quotation failed", zap.Error(err))
		return domain.Quotation{}, err
	}
	return quotation, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateQuotationRequest) (domain.Quotation, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Quotation{}, err
	}

	cols := map[string]any{"updated_at": s.clock.Now()}
	if req.Origin != nil {
		origin := strings.TrimSpace(*req.Origin)
		if origin == "" {
			return domain.Quotation{}, domain.ErrInvalidRoute
		}
		cols["origin"] = origin
	}
	if req.Destination != nil {
		destination := strings.TrimSpace(*req.Destination)
		if destination == "" {
			return domain.Quotation{}, domain.ErrInvalidRoute
		}
		cols["destination"] = destination
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.Quotation{}, domain.ErrInvalidPrice
		}
		cols["price"] = *req.Price
	}
	if req.Status != nil {
		if !domain.Status(*req.Status).IsValid() {
			return domain.Quotation{}, domain.ErrInvalidStatus
		}
		cols["status"] = *req.Status
	}
	if req.ValidUntil != nil {
		cols["valid_until"] = *req.ValidUntil
	}
	if req.Notes != nil {
		cols["notes"] = *req.Notes
	}

	affected, err := s.repo.UpdateColumns(ctx, s.db, id, cols)
	if err != nil {
		s.log.Error("update quotation failed", zap.Error(err))
		return domain.Quotation{}, err
	}
	if affected == 0 {
		return domain.Quotation{}, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Quotation{}, err
	}
	if item == nil {
		return domain.Quotation{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Quotation, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Quotation{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Quotation{}, err
	}
	if item == nil {
		return domain.Quotation{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListQuotationRequest) (domain.ListQuotationResponse, error) {
	var filter domain.ListQuotationFilter
	if v := strings.TrimSpace(req.CustomerID); v != "" {
		parsed, err := snowflake.ParseString(v)
		if err != nil {
			return domain.ListQuotationResponse{}, domain.ErrInvalidID
		}
		filter.CustomerID = parsed
	}
	filter.Status = strings.TrimSpace(req.Status)

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListQuotationResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(quotation *domain.Quotation) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        quotation.ID.String(),
			CreatedAt: quotation.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	quotations := make([]domain.Quotation, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		quotations = append(quotations, *item)
	}

	resp := domain.ListQuotationResponse{Quotations: quotations}
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
