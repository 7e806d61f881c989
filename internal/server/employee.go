package server

import (
	"net/http"
	"strings"

	employeedomain "github.com/armadalink/backoffice/internal/employee/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateEmployee(c *gin.Context) {
	var req employeedomain.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "employee.create", "employee", &targetID, map[string]any{
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var req employeedomain.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.employeeSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "employee.update", "employee", &targetID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEmployeeByID(c *gin.Context) {
	resp, err := s.employeeSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEmployees(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name   string `form:"name"`
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.List(c.Request.Context(), employeedomain.ListEmployeeRequest{
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

func (s *Server) DeleteEmployee(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.employeeSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "employee.delete", "employee", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
