package models

import (
	"database/sql"
	"time"
)

// Gender is stored as a small integer. Zero means not specified.
type Gender int32

const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

// BirthdayLayout is the textual form of Profile.Birthday on the wire.
const BirthdayLayout = "2006-01-02 15:04:05"

type Profile struct {
	ID        uint64
	AccountID uint64
	Nickname  string
	Gender    Gender
	Birthday  sql.NullTime
	CreatedAt time.Time
	UpdatedAt time.Time
}
