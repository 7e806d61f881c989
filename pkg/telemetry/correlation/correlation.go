package correlation

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// HeaderName carries the request correlation ID over HTTP.
const HeaderName = "X-Request-Id"

// correlationKey is an unexported type for context keys within this package.
type correlationKey struct{}

// ExtractCorrelationID fetches a correlation ID from the context if present.
func ExtractCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(correlationKey{}).(string); ok {
		return val
	}
	return ""
}

// ContextWithCorrelationID sets the correlation ID onto the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationKey{}, id)
}

// EnsureCorrelationID guarantees a correlation ID on the context, generating one when missing.
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	cid := ExtractCorrelationID(ctx)
	if cid == "" {
		cid = ulid.Make().String()
	}
	return ContextWithCorrelationID(ctx, cid), cid
}

// GinMiddleware accepts an inbound correlation ID header or mints one, echoes it
// back on the response, and seeds the request context for downstream handlers.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(HeaderName)
		if cid == "" {
			cid = ulid.Make().String()
		}
		c.Request = c.Request.WithContext(ContextWithCorrelationID(c.Request.Context(), cid))
		c.Writer.Header().Set(HeaderName, cid)
		c.Next()
	}
}
