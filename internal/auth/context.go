package auth

import "context"

// contextKey is an unexported type for context keys to prevent collisions
type contextKey string

const (
	subjectContextKey   contextKey = "github.com/user/demo-dashboard-api/internal/auth:subject"
	requestIDContextKey contextKey = "github.com/user/demo-dashboard-api/internal/auth:request_id"
)

// WithSubject stores the authenticated subject in the request context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// GetSubject retrieves the authenticated subject from the request context.
// Returns "", false if no subject is present.
// Always check the ok return value before using the subject.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey).(string)
	return subject, ok
}

// WithRequestID stores a request ID in context for correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetRequestID retrieves the request ID from the context
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}
