package service

import (
	"context"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/audit/domain"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/armadalink/backoffice/pkg/telemetry/correlation"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// Record writes an audit entry. Failures are logged and returned but callers
// treat them as best effort and do not roll back the audited mutation.
func (s *Service) Record(ctx context.Context, action string, targetType string, targetID *string, metadata map[string]any) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return domain.ErrInvalidAction
	}

	targetType = strings.TrimSpace(targetType)
	if targetType == "" {
		targetType = "unknown"
	}

	actor, _ := actorcontext.ActorIDFromContext(ctx)

	payload := map[string]any{}
	for key, value := range metadata {
		if key == "" {
			continue
		}
		payload[key] = value
	}
	if cid := correlation.ExtractCorrelationID(ctx); cid != "" {
		payload["correlation_id"] = cid
	}

	entry := domain.AuditLog{
		ID:         s.genID.Generate(),
		ActorID:    actor,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Metadata:   datatypes.JSONMap(payload),
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		s.log.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, req domain.ListAuditLogRequest) (domain.ListAuditLogResponse, error) {
	if req.StartAt != nil && req.EndAt != nil && req.StartAt.After(*req.EndAt) {
		return domain.ListAuditLogResponse{}, domain.ErrInvalidTimeRange
	}

	var cursor *domain.AuditCursor
	if strings.TrimSpace(req.PageToken) != "" {
		decoded, err := pagination.DecodeCursor(req.PageToken)
		if err != nil {
			return domain.ListAuditLogResponse{}, domain.ErrInvalidPageToken
		}
		createdAt, err := time.Parse(time.RFC3339, decoded.CreatedAt)
		if err != nil {
			return domain.ListAuditLogResponse{}, domain.ErrInvalidPageToken
		}
		id, err := snowflake.ParseString(decoded.ID)
		if err != nil {
			return domain.ListAuditLogResponse{}, domain.ErrInvalidPageToken
		}
		cursor = &domain.AuditCursor{CreatedAt: createdAt, ID: id}
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Action:     req.Action,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Cursor:     cursor,
		Limit:      pageSize,
	})
	if err != nil {
		return domain.ListAuditLogResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int32(pageSize), func(entry *domain.AuditLog) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        entry.ID.String(),
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	logs := make([]domain.AuditLog, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		logs = append(logs, *item)
	}

	resp := domain.ListAuditLogResponse{AuditLogs: logs}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}
