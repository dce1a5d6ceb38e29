package auth

import (
	"log/slog"
	"time"
)

// SecurityEvent is a structured log entry for an authentication attempt
type SecurityEvent struct {
	EventType     string        // "success" or "failure"
	Timestamp     time.Time     // Event timestamp
	RequestID     string        // Correlation ID
	Subject       string        // Subject from claims (empty on failure)
	FailureReason string        // Error code (on failure)
	TokenPreview  string        // Redacted token preview
	Latency       time.Duration // Validation latency
}

// LogValue implements slog.LogValuer for structured logging with redaction
func (e SecurityEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("event", e.EventType),
		slog.Time("timestamp", e.Timestamp),
		slog.String("request_id", e.RequestID),
		slog.String("subject", e.Subject),
		slog.String("failure_reason", e.FailureReason),
		slog.String("token", redactToken(e.TokenPreview)),
		slog.Duration("latency", e.Latency),
	)
}

// redactToken redacts sensitive token data
func redactToken(token string) string {
	if len(token) == 0 {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}

// logSecurityEvent emits a security event via the configured logger
func logSecurityEvent(logger *slog.Logger, event SecurityEvent) {
	if logger == nil {
		return // Logging disabled
	}

	if event.EventType == "failure" {
		logger.Warn("authentication failed", "auth_event", event)
	} else {
		logger.Info("authentication succeeded", "auth_event", event)
	}
}

// logAuthSuccess logs a successful authentication event
func logAuthSuccess(logger *slog.Logger, requestID string, claims *Claims, token string, latency time.Duration) {
	if logger == nil {
		return
	}

	logSecurityEvent(logger, SecurityEvent{
		EventType:    "success",
		Timestamp:    time.Now(),
		RequestID:    requestID,
		Subject:      claims.Subject,
		TokenPreview: token,
		Latency:      latency,
	})
}

// logAuthFailure logs a failed authentication event
func logAuthFailure(logger *slog.Logger, requestID string, token string, err error, latency time.Duration) {
	if logger == nil {
		return
	}

	logSecurityEvent(logger, SecurityEvent{
		EventType:     "failure",
		Timestamp:     time.Now(),
		RequestID:     requestID,
		FailureReason: getErrorCode(err),
		TokenPreview:  token,
		Latency:       latency,
	})
}
