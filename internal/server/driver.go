package server

import (
	"net/http"
	"strings"

	driverdomain "github.com/armadalink/backoffice/internal/driver/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateDriver(c *gin.Context) {
	var req driverdomain.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.driverSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "driver.create", "driver", &targetID, map[string]any{
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDriver(c *gin.Context) {
	var req driverdomain.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.driverSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "driver.update", "driver", &targetID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDriverByID(c *gin.Context) {
	resp, err := s.driverSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDrivers(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name   string `form:"name"`
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.driverSvc.List(c.Request.Context(), driverdomain.ListDriverRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Name:      strings.TrimSpace(query.Name),
		Status:    strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteDriver(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.driverSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "driver.delete", "driver", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
