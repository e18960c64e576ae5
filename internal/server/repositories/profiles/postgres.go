// Package profiles provides a PostgreSQL-backed repository for account
// profiles.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/dbx"
	"github.com/dmitrijs2005/userserver/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	query :=
		`INSERT INTO profiles (account_id, nickname, gender, birthday)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.AccountID, p.Nickname, int32(p.Gender), p.Birthday).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// GetForUpdate loads a profile and locks its row until the surrounding
// transaction ends. It must run on a *sql.Tx.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, id uint64) (*models.Profile, error) {
	query :=
		`SELECT id, account_id, nickname, gender, birthday FROM profiles
		 WHERE id = $1
		 FOR UPDATE
		 `

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.AccountID, &p.Nickname, &p.Gender, &p.Birthday)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Profile) error {
	query :=
		`UPDATE profiles SET nickname = $1, gender = $2, birthday = $3, updated_at = now()
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, p.Nickname, int32(p.Gender), p.Birthday, p.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
