// Package session owns the transport of session tokens between the
// browser and the API: an HttpOnly cookie for the dashboard, with a
// bearer header fallback for non-browser clients.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/armadalink/backoffice/internal/config"
	"github.com/gin-gonic/gin"
)

const DefaultCookieName = "_sid"

const bearerPrefix = "Bearer "

type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
	}
}

func (m *Manager) CookieName() string { return m.cookieName }

// ReadToken extracts the session token from the request, preferring the
// cookie and falling back to an Authorization bearer header.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(m.cookieName); err == nil {
		if token = strings.TrimSpace(token); token != "" {
			return token, true
		}
	}

	authz := c.GetHeader("Authorization")
	if strings.HasPrefix(authz, bearerPrefix) {
		if token := strings.TrimSpace(authz[len(bearerPrefix):]); token != "" {
			return token, true
		}
	}

	return "", false
}

// Set writes the session cookie with a max-age matching the session
// expiry, so the browser drops it around the time the server would
// reject it anyway.
func (m *Manager) Set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, maxAge, "/", "", m.secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
