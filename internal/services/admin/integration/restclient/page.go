package restclient

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"
)

// Page is the API's paged result envelope. Number is zero-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

// PageRequest selects a page and its ordering. Page is zero-based; Sort
// entries use the API's "field,asc|desc" form.
type PageRequest struct {
	Page int
	Size int
	Sort []string
}

// listAllPageSize is the page size used when draining a listing.
const listAllPageSize = 100

// listAllMaxPages bounds how many pages a drain may request.
const listAllMaxPages = 50

// drainPages fetches pages until the API reports the last one or maxPages
// is reached. Hitting the cap is logged because callers then see a partial
// result.
func drainPages[T any](ctx context.Context, op string, maxPages int, fetch func(context.Context, int) (Page[T], error)) ([]T, error) {
	var all []T
	for number := 0; number < maxPages; number++ {
		page, err := fetch(ctx, number)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Content...)
		if page.Last || len(page.Content) == 0 || number+1 >= page.TotalPages {
			return all, nil
		}
	}
	log.Printf("restclient: %s stopped after %d pages with %d rows; results are truncated", op, maxPages, len(all))
	return all, nil
}

// SortParam formats one API sort entry.
func SortParam(field string, desc bool) string {
	if desc {
		return field + ",desc"
	}
	return field + ",asc"
}

func (p PageRequest) encode(query url.Values) {
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		query.Set("size", strconv.Itoa(p.Size))
	}
	for _, sort := range p.Sort {
		if sort = strings.TrimSpace(sort); sort != "" {
			query.Add("sort", sort)
		}
	}
}

func setIfPresent(query url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		query.Set(key, value)
	}
}
