package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware returns a Gin handler that guards a route group with bearer
// token authentication. On success the resolved subject and a correlation
// request ID are injected into the request context.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Generate or extract request ID for correlation
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		token, err := extractTokenFromHeader(c.Request)
		if err != nil {
			logAuthFailure(svc.logger, requestID, token, err, time.Since(startTime))
			c.AbortWithStatusJSON(401, gin.H{
				"error":  "Missing or invalid Authorization header",
				"detail": getErrorCode(err),
			})
			return
		}

		claims, err := svc.Validate(token)
		if err != nil {
			logAuthFailure(svc.logger, requestID, token, err, time.Since(startTime))
			c.AbortWithStatusJSON(401, gin.H{
				"error":  "Invalid or expired token",
				"detail": err.Error(),
			})
			return
		}

		ctx := WithSubject(c.Request.Context(), claims.Subject)
		ctx = WithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)

		logAuthSuccess(svc.logger, requestID, claims, token, time.Since(startTime))

		c.Next()
	}
}
