package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListCountries(c *gin.Context) {
	countries, err := s.regionRepo.ListCountries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": countries})
}

func (s *Server) ListProvinces(c *gin.Context) {
	provinces, err := s.regionRepo.ListProvinces(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": provinces})
}

func (s *Server) ListRegencies(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		AbortWithError(c, invalidRequestError())
		return
	}
	regencies, err := s.regionRepo.ListRegenciesByProvince(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": regencies})
}

func (s *Server) ListDistricts(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		AbortWithError(c, invalidRequestError())
		return
	}
	districts, err := s.regionRepo.ListDistrictsByRegency(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": districts})
}
