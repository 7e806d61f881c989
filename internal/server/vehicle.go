package server

import (
	"net/http"
	"strings"

	vehicledomain "github.com/armadalink/backoffice/internal/vehicle/domain"
	"github.com/armadalink/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateVehicle(c *gin.Context) {
	var req vehicledomain.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vehicleSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "vehicle.create", "vehicle", &targetID, map[string]any{
			"plate_number": resp.PlateNumber,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateVehicle(c *gin.Context) {
	var req vehicledomain.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.vehicleSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "vehicle.update", "vehicle", &targetID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVehicleByID(c *gin.Context) {
	resp, err := s.vehicleSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListVehicles(c *gin.Context) {
	var query struct {
		pagination.Pagination
		PlateNumber string `form:"plate_number"`
		VehicleType string `form:"vehicle_type"`
		Status      string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vehicleSvc.List(c.Request.Context(), vehicledomain.ListVehicleRequest{
		PageToken:   query.PageToken,
		PageSize:    int32(query.PageSize),
		PlateNumber: strings.TrimSpace(query.PlateNumber),
		VehicleType: strings.TrimSpace(query.VehicleType),
		Status:      strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVehicle(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.vehicleSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "vehicle.delete", "vehicle", &id, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
