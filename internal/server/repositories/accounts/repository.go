package accounts

import (
	"context"

	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/pagination"
)

// ListFilter narrows List. Zero-valued fields are ignored.
type ListFilter struct {
	IDs      []uint64
	Email    string
	Nickname string
}

type Repository interface {
	Create(ctx context.Context, email, hash string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateHash(ctx context.Context, email, hash string) (int64, error)
	Find(ctx context.Context, id uint64) (*models.AccountView, error)
	List(ctx context.Context, filter ListFilter, opt pagination.ListOption) (pagination.Page[models.AccountView], error)
}
