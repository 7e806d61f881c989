package actorcontext

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// ActorContextKey is the request context key for the authenticated user ID.
type ActorContextKey struct{}

// WithActorID stores the acting user ID in the context.
func WithActorID(ctx context.Context, userID snowflake.ID) context.Context {
	return context.WithValue(ctx, ActorContextKey{}, userID)
}

// ActorIDFromContext returns the acting user ID from context, if set.
func ActorIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}

	value := ctx.Value(ActorContextKey{})
	switch typed := value.(type) {
	case int64:
		return snowflake.ID(typed), true
	case snowflake.ID:
		return typed, true
	case string:
		parsed, err := snowflake.ParseString(strings.TrimSpace(typed))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}
