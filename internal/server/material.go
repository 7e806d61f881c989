package server

import (
	"net/http"
	"strings"

	materialdomain "github.com/armadalink/backoffice/internal/material/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateMaterial(c *gin.Context) {
	var req materialdomain.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.materialSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "material.create", "material", &targetID, map[string]any{
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMaterial(c *gin.Context) {
	var req materialdomain.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.materialSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "material.update", "material", &targetID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMaterialByID(c *gin.Context) {
	resp, err := s.materialSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMaterials(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name   string `form:"name"`
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.materialSvc.List(c.Request.Context(), materialdomain.ListMaterialRequest{
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

func (s *Server) DeleteMaterial(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.materialSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "material.delete", "material", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
