package auth

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryServerInterceptor(t *testing.T) {
	svc := newTestService()

	validToken, err := svc.Issue("demo_user")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: "/demo.Dashboard/Secure"}

	// The handler echoes the subject it observes in context.
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		subject, ok := GetSubject(ctx)
		if !ok {
			t.Error("handler invoked without subject in context")
		}
		return subject, nil
	}

	interceptor := UnaryServerInterceptor(svc)

	tests := []struct {
		name         string
		ctx          context.Context
		expectedCode codes.Code
		expectedResp interface{}
	}{
		{
			name:         "no metadata",
			ctx:          context.Background(),
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "missing authorization metadata",
			ctx:          metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "value")),
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "garbage token",
			ctx:          metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer garbage")),
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "valid token",
			ctx:          metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+validToken)),
			expectedCode: codes.OK,
			expectedResp: "demo_user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := interceptor(tt.ctx, nil, info, handler)

			if tt.expectedCode == codes.OK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp != tt.expectedResp {
					t.Errorf("expected response %v, got %v", tt.expectedResp, resp)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			st, ok := status.FromError(err)
			if !ok {
				t.Fatalf("expected gRPC status error, got %v", err)
			}
			if st.Code() != tt.expectedCode {
				t.Errorf("expected code %v, got %v", tt.expectedCode, st.Code())
			}
		})
	}
}
