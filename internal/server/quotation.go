package server

import (
	"net/http"
	"strings"

	quotationdomain "github.com/armadalink/backoffice/internal/quotation/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateQuotation(c *gin.Context) {
	var req quotationdomain.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "quotation.create", "quotation", &targetID, map[string]any{
			"number":      resp.Number,
			"customer_id": resp.CustomerID.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateQuotation(c *gin.Context) {
	var req quotationdomain.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.quotationSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "quotation.update", "quotation", &targetID, map[string]any{
			"number": resp.Number,
			"status": string(resp.Status),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetQuotationByID(c *gin.Context) {
	resp, err := s.quotationSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListQuotations(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CustomerID string `form:"customer_id"`
		Status     string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.List(c.Request.Context(), quotationdomain.ListQuotationRequest{
		PageToken:  query.PageToken,
		PageSize:   int32(query.PageSize),
		CustomerID: strings.TrimSpace(query.CustomerID),
		Status:     strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteQuotation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.quotationSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "quotation.delete", "quotation", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
