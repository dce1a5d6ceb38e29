package auth

import "fmt"

// ErrorCode identifies the reason a token was rejected
type ErrorCode string

const (
	ErrExpired           ErrorCode = "EXPIRED"
	ErrInvalidSignature  ErrorCode = "INVALID_SIGNATURE"
	ErrMissingToken      ErrorCode = "MISSING_TOKEN"
	ErrMalformed         ErrorCode = "MALFORMED"
	ErrNoneAlgorithm     ErrorCode = "NONE_ALGORITHM"
	ErrAlgorithmMismatch ErrorCode = "ALGORITHM_MISMATCH"
)

// AuthError is a token validation failure with a machine-readable code
type AuthError struct {
	Code     ErrorCode
	Message  string
	Internal error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *AuthError) Unwrap() error {
	return e.Internal
}

// NewAuthError creates a new authentication error
func NewAuthError(code ErrorCode, message string, internal error) *AuthError {
	return &AuthError{
		Code:     code,
		Message:  message,
		Internal: internal,
	}
}
