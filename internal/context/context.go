package context

import (
	"context"

	"imgupload-go/internal/uploader"
)

type contextKey string

const (
	componentContextKey contextKey = "component"
	sessionContextKey   contextKey = "session"
)

// GetComponentFromContext retrieves the session's upload component
func GetComponentFromContext(ctx context.Context) *uploader.Component {
	c, _ := ctx.Value(componentContextKey).(*uploader.Component)
	return c
}

// GetSessionIDFromContext retrieves the session ID, empty when none is attached
func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey).(string)
	return id
}

// WithComponent adds the session ID and its component to the context
func WithComponent(ctx context.Context, sessionID string, c *uploader.Component) context.Context {
	ctx = context.WithValue(ctx, sessionContextKey, sessionID)
	return context.WithValue(ctx, componentContextKey, c)
}
