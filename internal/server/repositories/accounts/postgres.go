// Package accounts provides a PostgreSQL-backed repository for accounts and
// the account/profile view used by listings.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/dbx"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/pagination"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint hit.
const uniqueViolation = "23505"

const viewQuery = `SELECT a.id, a.email, p.nickname, p.gender, p.birthday
		 FROM accounts a
		 LEFT JOIN profiles p ON p.account_id = a.id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an account and returns its id. A duplicate email yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, email, hash string) (uint64, error) {
	query :=
		`INSERT INTO accounts (email, hash)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	var id uint64
	err := r.db.QueryRowContext(ctx, query, email, hash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, common.ErrorAlreadyExists
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, hash FROM accounts
		 WHERE email = $1
		 `

	acc := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&acc.ID, &acc.Email, &acc.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

// UpdateHash replaces the credential of the account with the given email
// and returns the number of rows touched.
func (r *PostgresRepository) UpdateHash(ctx context.Context, email, hash string) (int64, error) {
	query :=
		`UPDATE accounts SET hash = $1, updated_at = now()
		 WHERE email = $2
		 `

	res, err := r.db.ExecContext(ctx, query, hash, email)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) Find(ctx context.Context, id uint64) (*models.AccountView, error) {
	query := viewQuery + `
		 WHERE a.id = $1
		 `

	v := &models.AccountView{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(scanView(v)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

// List returns one page of accounts joined with their profiles, ordered by
// id.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter, opt pagination.ListOption) (pagination.Page[models.AccountView], error) {
	q := listQuery(filter)

	return pagination.Paginate(q, scanView).
		Page(opt.Page).
		Limit(opt.Limit).
		Load(ctx, r.db)
}

func listQuery(filter ListFilter) pagination.Query {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.IDs) > 0 {
		ph := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			ph = append(ph, next(id))
		}
		conds = append(conds, "a.id IN ("+strings.Join(ph, ", ")+")")
	}
	if filter.Email != "" {
		conds = append(conds, "a.email = "+next(filter.Email))
	}
	if filter.Nickname != "" {
		conds = append(conds, "p.nickname = "+next(filter.Nickname))
	}

	query := viewQuery
	if len(conds) > 0 {
		query += "\n		 WHERE " + strings.Join(conds, " AND ")
	}
	query += "\n		 ORDER BY a.id"

	return pagination.Query{SQL: query, Args: args}
}

func scanView(v *models.AccountView) []any {
	return []any{&v.ID, &v.Email, &v.Nickname, &v.Gender, &v.Birthday}
}
