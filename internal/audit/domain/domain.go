// Package domain contains core types for the audit trail.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of a back office mutation.
type AuditLog struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id"`
	ActorID    snowflake.ID      `gorm:"column:actor_id;not null;index" json:"actor_id"`
	Action     string            `gorm:"type:text;not null" json:"action"`
	TargetType string            `gorm:"column:target_type;type:text;not null" json:"target_type"`
	TargetID   *string           `gorm:"column:target_id;type:text" json:"target_id,omitempty"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`
	IPAddress  *string           `gorm:"column:ip_address;type:text" json:"ip_address,omitempty"`
	UserAgent  *string           `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

type ListAuditLogRequest struct {
	pagination.Pagination
	Action     string
	TargetType string
	TargetID   string
	StartAt    *time.Time
	EndAt      *time.Time
}

type ListAuditLogResponse struct {
	pagination.PageInfo
	AuditLogs []AuditLog `json:"audit_logs"`
}

type AuditCursor struct {
	CreatedAt time.Time
	ID        snowflake.ID
}

type ListFilter struct {
	Action     string
	TargetType string
	TargetID   string
	StartAt    *time.Time
	EndAt      *time.Time
	Cursor     *AuditCursor
	Limit      int
}

type Service interface {
	Record(ctx context.Context, action string, targetType string, targetID *string, metadata map[string]any) error
	List(ctx context.Context, req ListAuditLogRequest) (ListAuditLogResponse, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *AuditLog) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*AuditLog, error)
}

var (
	ErrInvalidPageToken = errors.New("invalid page token")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidAction    = errors.New("invalid action")
)
