// Package pagination wraps an arbitrary SELECT so that a single round trip
// returns one page of rows together with the size of the whole result set.
//
// The wrapped statement has the shape
//
//	SELECT t.*, COUNT(*) OVER () AS total_count FROM (<query>) AS t LIMIT n OFFSET m
//
// so the inner query must be a plain SELECT without its own LIMIT/OFFSET.
package pagination

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/dbx"
)

// Placeholder selects the bind parameter syntax of the driver.
type Placeholder int

const (
	// Dollar emits $1, $2, ... (PostgreSQL).
	Dollar Placeholder = iota
	// Question emits ? (SQLite, MySQL).
	Question
)

// Query is a SQL statement plus its bind arguments.
type Query struct {
	SQL  string
	Args []any
}

// ScanFunc returns the scan destinations for the inner query's columns,
// pointing into dest, in column order.
type ScanFunc[T any] func(dest *T) []any

// Paginated is a query decorated with paging. Build it with Paginate.
type Paginated[T any] struct {
	query       Query
	scan        ScanFunc[T]
	page        int64
	limit       int64
	placeholder Placeholder
}

func Paginate[T any](q Query, scan ScanFunc[T]) *Paginated[T] {
	return &Paginated[T]{
		query:       q,
		scan:        scan,
		page:        DefaultPage,
		limit:       DefaultLimit,
		placeholder: Dollar,
	}
}

// Page sets the 1-based page number.
func (p *Paginated[T]) Page(n int64) *Paginated[T] {
	p.page = n
	return p
}

func (p *Paginated[T]) Limit(n int64) *Paginated[T] {
	p.limit = n
	return p
}

func (p *Paginated[T]) Placeholder(ph Placeholder) *Paginated[T] {
	p.placeholder = ph
	return p
}

// ToSQL renders the decorated statement. LIMIT and OFFSET are appended as
// the last two bind arguments.
func (p *Paginated[T]) ToSQL() (string, []any, error) {
	if p.page < 1 {
		return "", nil, fmt.Errorf("%w: page must be >= 1, got %d", common.ErrArgumentInvalid, p.page)
	}
	if p.limit < 1 {
		return "", nil, fmt.Errorf("%w: limit must be >= 1, got %d", common.ErrArgumentInvalid, p.limit)
	}
	if p.page-1 > math.MaxInt64/p.limit {
		return "", nil, fmt.Errorf("%w: offset out of range for page %d, limit %d", common.ErrArgumentInvalid, p.page, p.limit)
	}

	inner := strings.TrimRight(strings.TrimSpace(p.query.SQL), "; \t\n")
	if inner == "" {
		return "", nil, fmt.Errorf("%w: empty query", common.ErrArgumentInvalid)
	}

	limitPH, offsetPH := "?", "?"
	if p.placeholder == Dollar {
		n := len(p.query.Args)
		limitPH = fmt.Sprintf("$%d", n+1)
		offsetPH = fmt.Sprintf("$%d", n+2)
	}

	sql := fmt.Sprintf(
		"SELECT t.*, COUNT(*) OVER () AS total_count FROM (%s) AS t LIMIT %s OFFSET %s",
		inner, limitPH, offsetPH,
	)

	args := make([]any, 0, len(p.query.Args)+2)
	args = append(args, p.query.Args...)
	args = append(args, p.limit, (p.page-1)*p.limit)

	return sql, args, nil
}

// Load runs the decorated statement on db and collects one page. An empty
// page reports Total 0. Driver errors are returned wrapped, never retried.
func (p *Paginated[T]) Load(ctx context.Context, db dbx.DBTX) (Page[T], error) {
	sql, args, err := p.ToSQL()
	if err != nil {
		return Page[T]{}, err
	}

	rows, err := db.QueryContext(ctx, sql, args...)
	if err != nil {
		return Page[T]{}, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	records := make([]T, 0, min(p.limit, 256))
	var total int64

	for rows.Next() {
		var rec T
		dest := append(p.scan(&rec), &total)
		if err := rows.Scan(dest...); err != nil {
			return Page[T]{}, fmt.Errorf("db error: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return Page[T]{}, fmt.Errorf("db error: %w", err)
	}

	return NewPage(records, p.page, p.limit, total), nil
}
