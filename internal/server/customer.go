package server

import (
	"net/http"
	"strings"

	customerdomain "github.com/armadalink/backoffice/internal/customer/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.CreateAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "customer.create", "customer", &targetID, map[string]any{
			"code": resp.Code,
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req customerdomain.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.customerSvc.UpdateAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "customer.update", "customer", &targetID, map[string]any{
			"code": resp.Code,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	resp, err := s.customerSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
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

	resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
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

func (s *Server) DeleteCustomer(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.customerSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "customer.delete", "customer", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
