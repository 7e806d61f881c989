package server

import (
	"net/http"
	"strings"

	authdomain "github.com/armadalink/backoffice/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	email := strings.TrimSpace(req.Email)
	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if s.auditSvc != nil {
			_ = s.auditSvc.Record(c.Request.Context(), "user.login_failed", "user", nil, map[string]any{
				"email": email,
			})
		}
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)

	if s.auditSvc != nil {
		targetID := result.UserID
		_ = s.auditSvc.Record(c.Request.Context(), "user.login", "user", &targetID, map[string]any{
			"email": email,
		})
	}

	c.JSON(http.StatusOK, result.Session)
}

func (s *Server) Logout(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if ok {
		_ = s.authsvc.Logout(c.Request.Context(), token)
	}
	s.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Me(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)
	user, err := s.authsvc.UserByID(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	userID := c.GetString(contextUserIDKey)
	user, err := s.authsvc.UserByID(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// re-authenticate with the current password before rotating
	if _, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:    user.Email,
		Password: req.CurrentPassword,
	}); err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.authsvc.ChangePassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), "user.change_password", "user", &userID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.authsvc.CreateUser(c.Request.Context(), authdomain.CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := user.ID.String()
		_ = s.auditSvc.Record(c.Request.Context(), "user.create", "user", &targetID, map[string]any{
			"email": user.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}
