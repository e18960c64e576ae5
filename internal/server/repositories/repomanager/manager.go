package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/userserver/internal/dbx"
	"github.com/dmitrijs2005/userserver/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/userserver/internal/server/repositories/profiles"
)

// RepositoryManager vends repositories bound to a DBTX, so that the same
// code runs on a pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}
