package server

import (
	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/gin-gonic/gin"
)

const contextUserIDKey = "user_id"

// AuthRequired authenticates the session cookie and stamps the acting
// user onto the request context for downstream services and audit.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, session.UserID.String())
		c.Request = c.Request.WithContext(actorcontext.WithActorID(c.Request.Context(), session.UserID))
		c.Next()
	}
}
