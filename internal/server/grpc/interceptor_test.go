package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/logging"
	pb "github.com/dmitrijs2005/userserver/internal/proto"
	"github.com/dmitrijs2005/userserver/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newInterceptorServer(t *testing.T) (*GRPCServer, *auth.TokenIssuer) {
	t.Helper()
	issuer := auth.NewTokenIssuer("secret")
	gate := auth.NewGate(issuer, logging.Nop{})
	return NewGRPCServer("", logging.Nop{}, &fakeAccounts{}, gate), issuer
}

func okHandler(called *bool) grpc.UnaryHandler {
	return func(ctx context.Context, req any) (any, error) {
		*called = true
		return "ok", nil
	}
}

func TestAuthInterceptor_UngatedMethodsPass(t *testing.T) {
	s, _ := newInterceptorServer(t)

	for _, m := range []string{
		pb.UserService_UserIndex_FullMethodName,
		pb.UserService_UserShow_FullMethodName,
		pb.UserService_UserStore_FullMethodName,
		pb.UserService_Login_FullMethodName,
		pb.UserService_RefreshToken_FullMethodName,
	} {
		called := false
		resp, err := s.authInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, okHandler(&called))
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestAuthInterceptor_GatedMethods(t *testing.T) {
	s, issuer := newInterceptorServer(t)

	access, err := issuer.Issue(auth.GrantNormal, time.Hour, 1, "a@b.com")
	require.NoError(t, err)
	refresh, err := issuer.Issue(auth.GrantRefresh, time.Hour, 1, "a@b.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		md     metadata.MD
		wantOK bool
	}{
		{name: "no metadata", md: nil},
		{name: "empty token", md: metadata.Pairs(common.AuthorizationHeaderName, "")},
		{name: "refresh grant", md: metadata.Pairs(common.AuthorizationHeaderName, refresh)},
		{name: "garbage", md: metadata.Pairs(common.AuthorizationHeaderName, "abc")},
		{name: "access token", md: metadata.Pairs(common.AuthorizationHeaderName, access), wantOK: true},
	}

	for _, method := range []string{pb.UserService_UserProfileUpdate_FullMethodName, pb.UserService_PasswordUpdate_FullMethodName} {
		for _, tt := range tests {
			t.Run(method+" "+tt.name, func(t *testing.T) {
				ctx := context.Background()
				if tt.md != nil {
					ctx = metadata.NewIncomingContext(ctx, tt.md)
				}

				called := false
				_, err := s.authInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, okHandler(&called))
				if tt.wantOK {
					require.NoError(t, err)
					assert.True(t, called)
					return
				}
				assert.False(t, called, "handler must not run")
				st, _ := status.FromError(err)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Equal(t, "unauthorized", st.Message())
			})
		}
	}
}

func TestRequestLogInterceptor_AssignsRequestID(t *testing.T) {
	s, _ := newInterceptorServer(t)
	info := &grpc.UnaryServerInfo{FullMethod: pb.UserService_Login_FullMethodName}

	var seen string
	h := func(ctx context.Context, req any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, status.Error(codes.NotFound, "x")
	}

	_, err := s.requestLogInterceptor(context.Background(), nil, info, h)
	assert.Equal(t, codes.NotFound, status.Code(err), "handler error is passed through")
	assert.Len(t, seen, 36, "uuid expected, got %q", seen)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.RequestIDHeaderName, "req-42"))
	_, _ = s.requestLogInterceptor(ctx, nil, info, h)
	assert.Equal(t, "req-42", seen)
}
