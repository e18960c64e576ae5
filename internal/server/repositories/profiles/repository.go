package profiles

import (
	"context"

	"github.com/dmitrijs2005/userserver/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	GetForUpdate(ctx context.Context, id uint64) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
}
