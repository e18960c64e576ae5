package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userserver/internal/common"
	pb "github.com/dmitrijs2005/userserver/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UserServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// noRetry lists calls whose Unauthenticated answer is final.
var noRetry = map[string]struct{}{
	pb.UserService_Login_FullMethodName:        {},
	pb.UserService_RefreshToken_FullMethodName: {},
}

func withTokens(ctx context.Context, access, refresh string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	md.Delete(common.RefreshTokenHeaderName)
	if access != "" {
		md.Set(common.AuthorizationHeaderName, access)
	}
	if refresh != "" {
		md.Set(common.RefreshTokenHeaderName, refresh)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()

	err := invoker(withTokens(ctx, access, refresh), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	if status.Code(err) != codes.Unauthenticated || refresh == "" {
		return err
	}
	if _, ok := noRetry[method]; ok {
		return err
	}

	if rerr := s.Refresh(ctx); rerr != nil {
		return err
	}

	// tokens refreshed, one more attempt
	access, refresh = s.tokens()
	return invoker(withTokens(ctx, access, refresh), method, req, reply, cc, opts...)
}

func NewUserClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

// Logout forgets the token pair. Tokens stay valid on the server until they
// expire.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) (string, error) {
	resp, err := s.client.UserStore(ctx, &pb.UserStoreRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Email, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.Token, resp.RefreshToken)
	return nil
}

// Refresh trades the stored refresh token for a new access token.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	_, refresh := s.tokens()
	if refresh == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.Token, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) List(ctx context.Context, q IndexQuery) (*pb.UserIndexResponse, error) {
	req := &pb.UserIndexRequest{Id: q.IDs, Email: q.Email, Nickname: q.Nickname, Page: q.Page, Limit: q.Limit}

	resp, err := s.client.UserIndex(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Show(ctx context.Context, id int64) (*pb.UserRecord, error) {
	resp, err := s.client.UserShow(ctx, &pb.UserShowRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, req *pb.UserProfileUpdateRequest) (*pb.UserProfileUpdateResponse, error) {
	resp, err := s.client.UserProfileUpdate(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	req := &pb.PasswordUpdateRequest{Email: email, OldPassword: oldPassword, NewPassword: newPassword}

	resp, err := s.client.PasswordUpdate(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Result {
		return fmt.Errorf("password was not changed")
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
