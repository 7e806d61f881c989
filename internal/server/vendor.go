package server

import (
	"net/http"
	"strings"

	vendordomain "github.com/armadalink/backoffice/internal/vendors/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateVendor(c *gin.Context) {
	var req vendordomain.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vendorSvc.CreateAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "vendor.create", "vendor", &targetID, map[string]any{
			"code": resp.Code,
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateVendor(c *gin.Context) {
	var req vendordomain.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.vendorSvc.UpdateAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "vendor.update", "vendor", &targetID, map[string]any{
			"code": resp.Code,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVendorByID(c *gin.Context) {
	resp, err := s.vendorSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListVendors(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name   string `form:"name"`
		Code   string `form:"code"`
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vendorSvc.List(c.Request.Context(), vendordomain.ListVendorRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Name:      strings.TrimSpace(query.Name),
		Code:      strings.TrimSpace(query.Code),
		Status:    strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVendor(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.vendorSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "vendor.delete", "vendor", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
