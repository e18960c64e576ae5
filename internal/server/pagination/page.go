package pagination

// Defaults applied to list requests that leave page or limit unset.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
)

// Meta describes where a Page sits in the full result set.
type Meta struct {
	CurrentPage int64 `json:"current_page"`
	TotalPage   int64 `json:"total_page"`
	Limit       int64 `json:"limit"`
	Total       int64 `json:"total"`
}

// Page is one slice of a paginated result. Record is never nil.
type Page[T any] struct {
	Record []T  `json:"record"`
	Meta   Meta `json:"meta"`
}

// NewPage builds a Page and derives TotalPage as ceil(total/limit).
func NewPage[T any](records []T, page, limit, total int64) Page[T] {
	if records == nil {
		records = []T{}
	}

	var pages int64
	if limit > 0 {
		pages = total / limit
		if total%limit != 0 {
			pages++
		}
	}

	return Page[T]{
		Record: records,
		Meta: Meta{
			CurrentPage: page,
			TotalPage:   pages,
			Limit:       limit,
			Total:       total,
		},
	}
}

// ListOption carries the paging part of a list request as received from the
// caller.
type ListOption struct {
	Page  int64
	Limit int64
}

// ApplyDefaults replaces unset (zero) fields with DefaultPage and
// DefaultLimit. Negative values are kept and rejected later by Paginate.
func (o ListOption) ApplyDefaults() ListOption {
	if o.Page == 0 {
		o.Page = DefaultPage
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}
