package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC unary server interceptor enforcing
// the same bearer token contract as the HTTP middleware
func UnaryServerInterceptor(svc *Service) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		startTime := time.Now()
		requestID := uuid.New().String()

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			err := NewAuthError(ErrMissingToken, "metadata not found", nil)
			logAuthFailure(svc.logger, requestID, "", err, time.Since(startTime))
			return nil, status.Error(codes.Unauthenticated, "metadata not found")
		}

		token, err := extractTokenFromMetadata(md)
		if err != nil {
			logAuthFailure(svc.logger, requestID, token, err, time.Since(startTime))
			return nil, status.Error(codes.Unauthenticated, getErrorCode(err))
		}

		claims, err := svc.Validate(token)
		if err != nil {
			logAuthFailure(svc.logger, requestID, token, err, time.Since(startTime))
			return nil, status.Error(codes.Unauthenticated, getErrorCode(err))
		}

		ctx = WithSubject(ctx, claims.Subject)
		ctx = WithRequestID(ctx, requestID)

		logAuthSuccess(svc.logger, requestID, claims, token, time.Since(startTime))

		return handler(ctx, req)
	}
}
