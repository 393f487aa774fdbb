package table

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/conectareparo/internal/platform/pagination"
)

// Query parameter names shared by every table.
const (
	ParamSearch  = "q"
	ParamOrderBy = "order_by"
	ParamPage    = "page"
	ParamSize    = "size"
)

// DefaultPageSize matches the page size of the list pages.
const DefaultPageSize = 25

// QueryConfig describes which query values a table accepts.
type QueryConfig struct {
	// DefaultOrderBy applies when order_by is missing or invalid, e.g. "createdAt desc".
	DefaultOrderBy string
	// Sortable lists the column keys that may be ordered by.
	Sortable []string
	// Filters lists the extra query keys kept as equality filters.
	Filters  []string
	PageSize pagination.PageSizeConfig
}

// Query is the normalized table state carried in the URL.
type Query struct {
	Search   string
	Filters  map[string]string
	SortKey  string
	SortDesc bool
	// Page is 1-based.
	Page     int
	PageSize int
}

// ParseQuery reads table state from URL values. Invalid ordering falls back
// to the default and out-of-range pages are clamped later by the page.
func ParseQuery(values url.Values, cfg QueryConfig) Query {
	pageCfg := cfg.PageSize
	if pageCfg.Default == 0 {
		pageCfg.Default = DefaultPageSize
	}
	if pageCfg.Max == 0 {
		pageCfg.Max = 100
	}
	q := Query{
		Search:   strings.TrimSpace(values.Get(ParamSearch)),
		Filters:  make(map[string]string, len(cfg.Filters)),
		PageSize: pagination.ClampPageSize(atoi(values.Get(ParamSize)), pageCfg),
		Page:     pagination.ClampPageNumber(atoi(values.Get(ParamPage)), 0),
	}
	for _, key := range cfg.Filters {
		if value := strings.TrimSpace(values.Get(key)); value != "" {
			q.Filters[key] = value
		}
	}

	orderCfg := pagination.OrderByConfig{Default: cfg.DefaultOrderBy, Allowed: cfg.Sortable}
	orderBy, err := pagination.ParseOrderBy(values.Get(ParamOrderBy), orderCfg)
	if err != nil {
		orderBy, err = pagination.ParseOrderBy("", orderCfg)
	}
	if err == nil && len(orderBy.Fields) > 0 {
		q.SortKey = orderBy.Fields[0].Path
		q.SortDesc = orderBy.Fields[0].Desc
	}
	return q
}

// Filter returns the value of a filter key.
func (q Query) Filter(key string) string {
	return q.Filters[key]
}

// OrderBy renders the sort as an order_by value.
func (q Query) OrderBy() string {
	if q.SortKey == "" {
		return ""
	}
	if q.SortDesc {
		return q.SortKey + " desc"
	}
	return q.SortKey
}

// Values encodes the query back into URL values, omitting defaults.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set(ParamSearch, q.Search)
	}
	for key, value := range q.Filters {
		if value != "" {
			values.Set(key, value)
		}
	}
	if orderBy := q.OrderBy(); orderBy != "" {
		values.Set(ParamOrderBy, orderBy)
	}
	if q.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 && q.PageSize != DefaultPageSize {
		values.Set(ParamSize, strconv.Itoa(q.PageSize))
	}
	return values
}

// URL appends the encoded query to base.
func (q Query) URL(base string) string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

// WithPage returns a copy pointing at page.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// WithSort returns a copy sorted by key. The active key flips direction and
// a new key starts ascending. Sorting always returns to the first page.
func (q Query) WithSort(key string) Query {
	if q.SortKey == key {
		q.SortDesc = !q.SortDesc
	} else {
		q.SortKey = key
		q.SortDesc = false
	}
	q.Page = 1
	return q
}

func atoi(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
