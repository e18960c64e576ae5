// Package models holds the persisted records of the account server.
package models

import (
	"database/sql"
	"time"
)

// Account is a row of the accounts table. Hash is the encoded credential.
type Account struct {
	ID        uint64
	Email     string
	Hash      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountView is an account joined with its profile. The profile columns
// are nullable because the join is a LEFT JOIN.
type AccountView struct {
	ID       uint64
	Email    sql.NullString
	Nickname sql.NullString
	Gender   sql.NullInt32
	Birthday sql.NullTime
}
