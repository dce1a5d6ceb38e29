package auth

import (
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

const bearerPrefix = "Bearer "

// extractTokenFromHeader extracts the bearer token from the Authorization header.
// Expected format: "Authorization: Bearer <token>"
func extractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", NewAuthError(ErrMissingToken, "authorization header not found", nil)
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", NewAuthError(ErrMalformed, "invalid authorization header format, expected 'Bearer <token>'", nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", NewAuthError(ErrMissingToken, "token is empty", nil)
	}

	return token, nil
}

// extractTokenFromMetadata extracts the bearer token from gRPC metadata
func extractTokenFromMetadata(md metadata.MD) (string, error) {
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", NewAuthError(ErrMissingToken, "authorization metadata not found", nil)
	}

	authHeader := values[0]
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", NewAuthError(ErrMalformed, "invalid authorization format, expected 'Bearer <token>'", nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", NewAuthError(ErrMissingToken, "token is empty", nil)
	}

	return token, nil
}
