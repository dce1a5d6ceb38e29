package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a validated bearer token
type Claims struct {
	Subject   string    // Username the token was issued to (sub claim)
	Issuer    string    // Issuing application (iss claim)
	Version   string    // Application version at issue time (ver claim)
	IssuedAt  time.Time // Issue time (iat claim)
	ExpiresAt time.Time // Expiration time (exp claim)
}

// Service issues and validates HS256-signed bearer tokens.
// Tokens are pure bearer credentials: no revocation, no refresh,
// expiry is the only lifecycle end.
type Service struct {
	secret  []byte
	issuer  string
	version string
	ttl     time.Duration
	logger  *slog.Logger

	now func() time.Time // overridable for tests
}

// NewService creates a token service signing with the given shared secret.
// issuer and version are embedded in every claim set; ttl bounds token lifetime.
func NewService(secret []byte, issuer, version string, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		secret:  secret,
		issuer:  issuer,
		version: version,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a new token for subject, valid for the configured TTL.
// The subject is not checked against any credential store.
func (s *Service) Issue(subject string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
		"iss": s.issuer,
		"ver": s.version,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string, returning its claims.
// A token is valid only if its signature verifies under the service secret,
// its algorithm is HS256, and the current time is before the exp claim.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.checkAlgorithm(token)
	})
	if err != nil {
		// The JWT library may wrap our algorithm errors, so unwrap first
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return nil, authErr
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpired, "token has expired", err)
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, NewAuthError(ErrInvalidSignature, "signature verification failed", err)
		}
		return nil, NewAuthError(ErrMalformed, "malformed token", err)
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidSignature, "token is invalid", nil)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewAuthError(ErrMalformed, "invalid claims format", nil)
	}

	claims := decodeClaims(mapClaims)

	// The parser already enforces exp, but it treats now == exp as valid;
	// the contract here is strict: a token is dead at its expiry instant.
	if !s.now().Before(claims.ExpiresAt) {
		return nil, NewAuthError(ErrExpired, fmt.Sprintf("token expired at %v", claims.ExpiresAt), nil)
	}

	return claims, nil
}

// checkAlgorithm pins the token to HS256 and returns the signing secret
func (s *Service) checkAlgorithm(token *jwt.Token) (interface{}, error) {
	alg, ok := token.Header["alg"].(string)
	if !ok {
		return nil, NewAuthError(ErrMalformed, "missing algorithm in token header", nil)
	}

	// Reject "none" explicitly (case-insensitive check)
	if alg == "none" || alg == "None" || alg == "NONE" {
		return nil, NewAuthError(ErrNoneAlgorithm, "none algorithm not allowed", nil)
	}

	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, NewAuthError(
			ErrAlgorithmMismatch,
			fmt.Sprintf("algorithm %s does not match expected method %s", alg, jwt.SigningMethodHS256.Alg()),
			nil,
		)
	}

	return s.secret, nil
}

// decodeClaims converts jwt.MapClaims to our Claims struct
func decodeClaims(mapClaims jwt.MapClaims) *Claims {
	claims := &Claims{}

	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if iss, ok := mapClaims["iss"].(string); ok {
		claims.Issuer = iss
	}
	if ver, ok := mapClaims["ver"].(string); ok {
		claims.Version = ver
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims
}

// getErrorCode extracts the error code from an authentication error
func getErrorCode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return string(authErr.Code)
	}
	return "UNKNOWN"
}
