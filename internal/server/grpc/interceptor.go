package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userserver/internal/common"
	pb "github.com/dmitrijs2005/userserver/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// gatedMethods require a valid access token.
var gatedMethods = map[string]struct{}{
	pb.UserService_UserProfileUpdate_FullMethodName: {},
	pb.UserService_PasswordUpdate_FullMethodName:    {},
}

// RequestIDFromContext returns the id assigned by the logging interceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestLogInterceptor tags the call with a request id (taken from
// x-request-id metadata when present), echoes it back as a header and logs
// method, code and duration.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = context.WithValue(ctx, requestIDKey, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

// authInterceptor runs the auth gate for gated methods. Every rejection has
// the same public message; the reason is logged by the gate.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := gatedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	md, _ := metadata.FromIncomingContext(ctx)
	if err := s.gate.Authenticate(ctx, md); err != nil {
		return nil, status.Error(codes.Unauthenticated, unauthorizedMessage)
	}

	return handler(ctx, req)
}
