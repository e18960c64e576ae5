package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userserver/internal/common"
	pb "github.com/dmitrijs2005/userserver/internal/proto"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// unauthorizedMessage is the only text a caller sees for any
// authentication failure.
const unauthorizedMessage = "unauthorized"

func (s *GRPCServer) UserIndex(ctx context.Context, req *pb.UserIndexRequest) (*pb.UserIndexResponse, error) {
	page, err := s.accounts.Index(ctx, services.IndexParams{
		IDs:      req.Id,
		Email:    req.Email,
		Nickname: req.Nickname,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "UserIndex", err)
	}

	records := make([]*pb.UserRecord, 0, len(page.Record))
	for i := range page.Record {
		records = append(records, toUserRecord(&page.Record[i]))
	}

	return &pb.UserIndexResponse{
		Record: records,
		Meta: &pb.PaginationMeta{
			CurrentPage: page.Meta.CurrentPage,
			TotalPage:   page.Meta.TotalPage,
			Limit:       page.Meta.Limit,
			Total:       page.Meta.Total,
		},
	}, nil
}

func (s *GRPCServer) UserShow(ctx context.Context, req *pb.UserShowRequest) (*pb.UserShowResponse, error) {
	if req.Id < 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}

	v, err := s.accounts.Show(ctx, uint64(req.Id))
	if err != nil {
		return nil, s.toStatus(ctx, "UserShow", err)
	}

	return &pb.UserShowResponse{User: toUserRecord(v)}, nil
}

func (s *GRPCServer) UserStore(ctx context.Context, req *pb.UserStoreRequest) (*pb.UserStoreResponse, error) {
	email, err := s.accounts.Store(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "UserStore", err)
	}

	s.logger.Info(ctx, "Registered", "email", email)
	return &pb.UserStoreResponse{Email: email}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}

	return &pb.LoginResponse{Token: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.accounts.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "RefreshToken", err)
	}

	return &pb.RefreshTokenResponse{Token: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) UserProfileUpdate(ctx context.Context, req *pb.UserProfileUpdateRequest) (*pb.UserProfileUpdateResponse, error) {
	if req.Id < 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}

	p, err := s.accounts.UpdateProfile(ctx, services.ProfileUpdate{
		ID:       uint64(req.Id),
		Nickname: req.Nickname,
		Gender:   models.Gender(req.Gender),
		Birthday: req.Birthday,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "UserProfileUpdate", err)
	}

	resp := &pb.UserProfileUpdateResponse{
		Id:        int64(p.ID),
		AccountId: int64(p.AccountID),
		Nickname:  p.Nickname,
		Gender:    int32(p.Gender),
	}
	if p.Birthday.Valid {
		resp.Birthday = p.Birthday.Time.Format(models.BirthdayLayout)
	}
	return resp, nil
}

func (s *GRPCServer) PasswordUpdate(ctx context.Context, req *pb.PasswordUpdateRequest) (*pb.PasswordUpdateResponse, error) {
	ok, err := s.accounts.UpdatePassword(ctx, req.Email, req.OldPassword, req.NewPassword)
	if err != nil {
		return nil, s.toStatus(ctx, "PasswordUpdate", err)
	}

	return &pb.PasswordUpdateResponse{Result: ok}, nil
}

// toStatus maps service errors to gRPC status codes. Unknown account and
// wrong password share one public message; the cause only goes to the log.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	rid := RequestIDFromContext(ctx)

	switch {
	case errors.Is(err, common.ErrArgumentInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		s.logger.Info(ctx, "unauthenticated", "op", op, "request_id", rid, "cause", err.Error())
		return status.Error(codes.Unauthenticated, unauthorizedMessage)
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	default:
		s.logger.Error(ctx, "request failed", "op", op, "request_id", rid, "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func toUserRecord(v *models.AccountView) *pb.UserRecord {
	r := &pb.UserRecord{
		Id:       int64(v.ID),
		Email:    v.Email.String,
		Nickname: v.Nickname.String,
		Gender:   v.Gender.Int32,
	}
	if v.Birthday.Valid {
		r.Birthday = v.Birthday.Time.Format(models.BirthdayLayout)
	}
	return r
}
