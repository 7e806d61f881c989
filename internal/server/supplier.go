package server

import (
	"net/http"
	"strings"

	supplierdomain "github.com/armadalink/backoffice/internal/supplier/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateSupplier(c *gin.Context) {
	var req supplierdomain.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.CreateAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "supplier.create", "supplier", &targetID, map[string]any{
			"code": resp.Code,
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateSupplier(c *gin.Context) {
	var req supplierdomain.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.supplierSvc.UpdateAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "supplier.update", "supplier", &targetID, map[string]any{
			"code": resp.Code,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetSupplierByID(c *gin.Context) {
	resp, err := s.supplierSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSuppliers(c *gin.Context) {
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

	resp, err := s.supplierSvc.List(c.Request.Context(), supplierdomain.ListSupplierRequest{
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

func (s *Server) DeleteSupplier(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.supplierSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "supplier.delete", "supplier", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
