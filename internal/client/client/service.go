package client

import (
	"context"

	pb "github.com/dmitrijs2005/userserver/internal/proto"
)

// IndexQuery narrows the account list. Empty fields are not sent.
type IndexQuery struct {
	IDs      string
	Email    string
	Nickname string
	Page     int64
	Limit    int64
}

type Client interface {
	Close() error
	LoggedIn() bool
	Logout()
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) error
	Refresh(ctx context.Context) error
	List(ctx context.Context, q IndexQuery) (*pb.UserIndexResponse, error)
	Show(ctx context.Context, id int64) (*pb.UserRecord, error)
	UpdateProfile(ctx context.Context, req *pb.UserProfileUpdateRequest) (*pb.UserProfileUpdateResponse, error)
	UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) error
}
