package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/supplier/domain"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/region"
	regiondomain "github.com/armadalink/backoffice/internal/region/domain"
	"github.com/armadalink/backoffice/internal/sequence"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const codeKind = "supplier"

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Settings   *config.SettingsHolder
	Repo       domain.Repository
	RegionRepo regiondomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	settings   *config.SettingsHolder
	repo       domain.Repository
	regionRepo regiondomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("supplier.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		settings:   p.Settings,
		repo:       p.Repo,
		regionRepo: p.RegionRepo,
	}
}

func (s *Service) CreateAll(ctx context.Context, req domain.CreateSupplierRequest) (domain.SupplierDetail, error) {
	actor, ok := actorcontext.ActorIDFromContext(ctx)
	if !ok || actor == 0 {
		return domain.SupplierDetail{}, domain.ErrMissingActor
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.SupplierDetail{}, domain.ErrInvalidName
	}

	status := party.StatusActive
	if req.Status != nil {
		status = party.Status(*req.Status)
		if !status.IsValid() {
			return domain.SupplierDetail{}, domain.ErrInvalidStatus
		}
	}

	settings := s.settings.Get()
	now := s.clock.Now()
	supplier := domain.Supplier{
		ID:         s.genID.Generate(),
		Name:       name,
		Status:     status,
		Notes:      req.Notes,
		TaxNumber:  req.TaxNumber,
		TaxName:    req.TaxName,
		TaxAddress: req.TaxAddress,
		TaxDate:    req.TaxDate,
		CreatedBy:  actor,
		Metadata:   datatypes.JSONMap{},
		CreatedAt:  now,
		UpdatedAt:  now,
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
		supplier.Code = code

		if err := s.repo.Insert(ctx, tx, &supplier); err != nil {
			return err
		}
		if err := party.ReconcileAddresses(ctx, tx, s.genID, party.OwnerSupplier, supplier.ID, req.Addresses, now); err != nil {
			return err
		}
		return party.ReconcileContacts(ctx, tx, s.genID, party.OwnerSupplier, supplier.ID, stripFax(req.Contacts), now)
	})
	if err != nil {
		return domain.SupplierDetail{}, s.wrap(ctx, "create supplier", err)
	}

	return s.detail(ctx, supplier.ID)
}

// UpdateAll applies a sparse aggregate patch: root fields, then each child
// collection in submission order, all inside one transaction. The business
// code is never changed by updates, whatever the request submitted.
func (s *Service) UpdateAll(ctx context.Context, req domain.UpdateSupplierRequest) (domain.SupplierDetail, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.SupplierDetail{}, err
	}

	settings := s.settings.Get()
	now := s.clock.Now()

	cols := map[string]any{"updated_at": now}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.SupplierDetail{}, domain.ErrInvalidName
		}
		cols["name"] = name
	}
	if req.Status != nil {
		if !party.Status(*req.Status).IsValid() {
			return domain.SupplierDetail{}, domain.ErrInvalidStatus
		}
		cols["status"] = *req.Status
	}
	if req.Notes != nil {
		cols["notes"] = *req.Notes
	}
	if req.TaxNumber != nil {
		cols["tax_number"] = *req.TaxNumber
	}
	if req.TaxName != nil {
		cols["tax_name"] = *req.TaxName
	}
	if req.TaxAddress != nil {
		cols["tax_address"] = *req.TaxAddress
	}
	if req.TaxDate != nil {
		cols["tax_date"] = *req.TaxDate
	}

	ctx, cancel := context.WithTimeout(ctx, settings.UpdateTimeout())
	defer cancel()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		if _, err := s.repo.UpdateColumns(ctx, tx, id, cols); err != nil {
			return err
		}
		if err := party.ReconcileAddresses(ctx, tx, s.genID, party.OwnerSupplier, id, req.Addresses, now); err != nil {
			return err
		}
		return party.ReconcileContacts(ctx, tx, s.genID, party.OwnerSupplier, id, stripFax(req.Contacts), now)
	})
	if err != nil {
		return domain.SupplierDetail{}, s.wrap(ctx, "update supplier", err)
	}

	return s.detail(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.SupplierDetail, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.SupplierDetail{}, err
	}
	return s.detail(ctx, parsed)
}

func (s *Service) List(ctx context.Context, req domain.ListSupplierRequest) (domain.ListSupplierResponse, error) {
	filter := domain.ListSupplierFilter{
		Name:   strings.TrimSpace(req.Name),
		Code:   strings.TrimSpace(req.Code),
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
		return domain.ListSupplierResponse{}, s.wrap(ctx, "list suppliers", err)
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(supplier *domain.Supplier) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        supplier.ID.String(),
			CreatedAt: supplier.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	suppliers := make([]domain.Supplier, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		suppliers = append(suppliers, *item)
	}

	resp := domain.ListSupplierResponse{Suppliers: suppliers}
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

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, parsed)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := party.DeleteChildren(ctx, tx, party.OwnerSupplier, parsed); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, parsed)
	})
	return s.wrap(ctx, "delete supplier", err)
}

func (s *Service) detail(ctx context.Context, id snowflake.ID) (domain.SupplierDetail, error) {
	root, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.SupplierDetail{}, s.wrap(ctx, "read supplier", err)
	}
	if root == nil {
		return domain.SupplierDetail{}, domain.ErrNotFound
	}

	addresses, err := party.LoadAddresses(ctx, s.db, party.OwnerSupplier, id)
	if err != nil {
		return domain.SupplierDetail{}, s.wrap(ctx, "read supplier addresses", err)
	}
	views, err := region.ResolveAddressViews(ctx, s.regionRepo, addresses)
	if err != nil {
		return domain.SupplierDetail{}, s.wrap(ctx, "resolve supplier regions", err)
	}
	contacts, err := party.LoadContacts(ctx, s.db, party.OwnerSupplier, id)
	if err != nil {
		return domain.SupplierDetail{}, s.wrap(ctx, "read supplier contacts", err)
	}

	return domain.SupplierDetail{
		Supplier:  *root,
		Addresses: views,
		Contacts:  contacts,
	}, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// wrap passes known domain failures through untouched and logs anything
// unexpected, so storage-engine detail never reaches the caller.
func (s *Service) wrap(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCodeConflict),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrMissingActor),
		errors.Is(err, party.ErrChildNotFound):
		return err
	}
	if party.AsValidationError(err) != nil {
		return err
	}
	if db.IsDuplicateKeyErr(err) {
		return domain.ErrCodeConflict
	}
	s.log.Error(op+" failed", zap.Error(err))
	return err
}

// stripFax drops the vendor-only fax field from contact submissions.
func stripFax(inputs []party.ContactInput) []party.ContactInput {
	out := make([]party.ContactInput, len(inputs))
	copy(out, inputs)
	for i := range out {
		out[i].FaxNumber = nil
	}
	return out
}
