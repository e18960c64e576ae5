// Package grpc exposes AccountService over gRPC: request handlers, error
// mapping to status codes, and the logging and auth interceptors.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userserver/internal/logging"
	pb "github.com/dmitrijs2005/userserver/internal/proto"
	"github.com/dmitrijs2005/userserver/internal/server/auth"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/pagination"
	"github.com/dmitrijs2005/userserver/internal/server/services"
	"google.golang.org/grpc"
)

// AccountService is the business API the handlers call.
// *services.AccountService implements it.
type AccountService interface {
	Index(ctx context.Context, p services.IndexParams) (pagination.Page[models.AccountView], error)
	Show(ctx context.Context, id uint64) (*models.AccountView, error)
	Store(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	UpdateProfile(ctx context.Context, u services.ProfileUpdate) (*models.Profile, error)
	UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) (bool, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address  string
	accounts AccountService
	gate     *auth.Gate
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, accounts AccountService, gate *auth.Gate) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: accounts,
		gate:     gate,
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered. Logging runs first so that rejected calls are logged too.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.authInterceptor))
	pb.RegisterUserServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
