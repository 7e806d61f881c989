package server

import (
	"net/http"
	"strings"
	"time"

	auditdomain "github.com/armadalink/backoffice/internal/audit/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListAuditLogs(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Action     string `form:"action"`
		TargetType string `form:"target_type"`
		TargetID   string `form:"target_id"`
		StartAt    string `form:"start_at"`
		EndAt      string `form:"end_at"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	startAt, err := parseOptionalTime(query.StartAt)
	if err != nil {
		AbortWithError(c, newValidationError("start_at", "invalid_start_at", "invalid start_at"))
		return
	}
	endAt, err := parseOptionalTime(query.EndAt)
	if err != nil {
		AbortWithError(c, newValidationError("end_at", "invalid_end_at", "invalid end_at"))
		return
	}

	resp, err := s.auditSvc.List(c.Request.Context(), auditdomain.ListAuditLogRequest{
		Pagination: query.Pagination,
		Action:     strings.TrimSpace(query.Action),
		TargetType: strings.TrimSpace(query.TargetType),
		TargetID:   strings.TrimSpace(query.TargetID),
		StartAt:    startAt,
		EndAt:      endAt,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func parseOptionalTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
