package pagination

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Name string
}

func scanItem(it *item) []any { return []any{&it.ID, &it.Name} }

func TestToSQL_DollarPlaceholders(t *testing.T) {
	q := Query{SQL: "SELECT id, name FROM items WHERE name LIKE $1 AND id > $2;", Args: []any{"a%", 3}}

	sql, args, err := Paginate(q, scanItem).Page(3).Limit(10).ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT t.*, COUNT(*) OVER () AS total_count FROM (SELECT id, name FROM items WHERE name LIKE $1 AND id > $2) AS t LIMIT $3 OFFSET $4",
		sql)
	if diff := cmp.Diff([]any{"a%", 3, int64(10), int64(20)}, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestToSQL_QuestionPlaceholders(t *testing.T) {
	q := Query{SQL: "SELECT id, name FROM items"}

	sql, args, err := Paginate(q, scanItem).Placeholder(Question).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT t.*, COUNT(*) OVER () AS total_count FROM (SELECT id, name FROM items) AS t LIMIT ? OFFSET ?", sql)
	assert.Equal(t, []any{DefaultLimit, int64(0)}, args)
}

func TestToSQL_InvalidArguments(t *testing.T) {
	q := Query{SQL: "SELECT id, name FROM items"}

	tests := []struct {
		name string
		p    *Paginated[item]
	}{
		{name: "zero page", p: Paginate(q, scanItem).Page(0)},
		{name: "negative page", p: Paginate(q, scanItem).Page(-1)},
		{name: "zero limit", p: Paginate(q, scanItem).Limit(0)},
		{name: "empty query", p: Paginate(Query{SQL: " ; "}, scanItem)},
		{name: "offset overflow", p: Paginate(q, scanItem).Page(math.MaxInt64 / 5).Limit(10)},
		{name: "offset overflow max page", p: Paginate(q, scanItem).Page(math.MaxInt64).Limit(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.p.ToSQL()
			require.ErrorIs(t, err, common.ErrArgumentInvalid)

			_, err = tt.p.Load(context.Background(), nil)
			require.ErrorIs(t, err, common.ErrArgumentInvalid)
		})
	}
}

func TestToSQL_LargestOffset(t *testing.T) {
	q := Query{SQL: "SELECT id, name FROM items"}

	_, args, err := Paginate(q, scanItem).Page(math.MaxInt64/10 + 1).Limit(10).ToSQL()
	require.NoError(t, err)

	offset := args[1].(int64)
	assert.Equal(t, int64(math.MaxInt64/10*10), offset)
	assert.Positive(t, offset)

	_, args, err = Paginate(q, scanItem).Limit(math.MaxInt64).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(math.MaxInt64), int64(0)}, args)
}

func newMock(t *testing.T) (sqlmock.Sqlmock, func() *Paginated[item], *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	q := Query{SQL: "SELECT id, name FROM items ORDER BY id"}
	return mock, func() *Paginated[item] { return Paginate(q, scanItem) }, db
}

var wrapped = regexp.QuoteMeta("SELECT t.*, COUNT(*) OVER () AS total_count FROM (SELECT id, name FROM items ORDER BY id) AS t LIMIT $1 OFFSET $2")

func TestLoad_LastPartialPage(t *testing.T) {
	mock, build, db := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "total_count"})
	for i := int64(21); i <= 25; i++ {
		rows.AddRow(i, "item", int64(25))
	}
	mock.ExpectQuery(wrapped).WithArgs(int64(10), int64(20)).WillReturnRows(rows)

	page, err := build().Page(3).Limit(10).Load(context.Background(), db)
	require.NoError(t, err)

	assert.Len(t, page.Record, 5)
	assert.Equal(t, int64(21), page.Record[0].ID)
	assert.Equal(t, Meta{CurrentPage: 3, TotalPage: 3, Limit: 10, Total: 25}, page.Meta)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_NoRows(t *testing.T) {
	mock, build, db := newMock(t)

	mock.ExpectQuery(wrapped).WithArgs(int64(10), int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total_count"}))

	page, err := build().Load(context.Background(), db)
	require.NoError(t, err)

	assert.NotNil(t, page.Record)
	assert.Empty(t, page.Record)
	assert.Equal(t, Meta{CurrentPage: 1, TotalPage: 0, Limit: 10, Total: 0}, page.Meta)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_QueryErrorPropagates(t *testing.T) {
	mock, build, db := newMock(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(wrapped).WillReturnError(boom)

	_, err := build().Load(context.Background(), db)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_ScanError(t *testing.T) {
	mock, build, db := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "total_count"}).AddRow("not-a-number", "x", int64(1))
	mock.ExpectQuery(wrapped).WillReturnRows(rows)

	_, err := build().Load(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestLoad_RowsError(t *testing.T) {
	mock, build, db := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "total_count"}).
		AddRow(int64(1), "x", int64(2)).
		AddRow(int64(2), "y", int64(2)).
		RowError(1, errors.New("broken pipe"))
	mock.ExpectQuery(wrapped).WillReturnRows(rows)

	_, err := build().Load(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int64
		wantPages          int64
	}{
		{name: "exact", page: 1, limit: 5, total: 25, wantPages: 5},
		{name: "remainder", page: 2, limit: 10, total: 25, wantPages: 3},
		{name: "single", page: 1, limit: 10, total: 1, wantPages: 1},
		{name: "empty", page: 1, limit: 10, total: 0, wantPages: 0},
		{name: "huge limit", page: 1, limit: math.MaxInt64, total: 25, wantPages: 1},
		{name: "huge total", page: 1, limit: 2, total: math.MaxInt64, wantPages: math.MaxInt64/2 + 1},
		{name: "both huge", page: 1, limit: math.MaxInt64, total: math.MaxInt64, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage[item](nil, tt.page, tt.limit, tt.total)
			assert.NotNil(t, p.Record)
			assert.Equal(t, tt.wantPages, p.Meta.TotalPage)
			assert.Equal(t, tt.page, p.Meta.CurrentPage)
		})
	}
}

func TestListOption_ApplyDefaults(t *testing.T) {
	assert.Equal(t, ListOption{Page: 1, Limit: 10}, ListOption{}.ApplyDefaults())
	assert.Equal(t, ListOption{Page: 4, Limit: 2}, ListOption{Page: 4, Limit: 2}.ApplyDefaults())
	assert.Equal(t, ListOption{Page: -1, Limit: 10}, ListOption{Page: -1}.ApplyDefaults())
}
