// Package pagination normalizes page and ordering inputs for list views.
package pagination

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// OrderByConfig configures order_by validation.
type OrderByConfig struct {
	// Default applies when no order_by is requested.
	Default string
	// Allowed lists the field paths callers may order by.
	Allowed []string
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ClampPageNumber keeps a 1-based page number within [1, totalPages].
// A result set with no pages still reports page 1.
func ClampPageNumber(page, totalPages int) int {
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page
}

// TotalPages returns how many pages of pageSize hold total items.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ParseOrderBy parses an AIP-132 order_by expression ("created_at desc")
// and validates it against the allowed paths.
func ParseOrderBy(raw string, cfg OrderByConfig) (ordering.OrderBy, error) {
	var orderBy ordering.OrderBy
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = cfg.Default
	}
	if err := orderBy.UnmarshalString(raw); err != nil {
		return ordering.OrderBy{}, fmt.Errorf("invalid order_by: %w", err)
	}
	if len(cfg.Allowed) > 0 {
		if err := orderBy.ValidateForPaths(cfg.Allowed...); err != nil {
			return ordering.OrderBy{}, fmt.Errorf("invalid order_by: %w", err)
		}
	}
	return orderBy, nil
}

// FormatOrderBy renders an ordering back to its AIP-132 string form.
func FormatOrderBy(orderBy ordering.OrderBy) string {
	parts := make([]string, 0, len(orderBy.Fields))
	for _, field := range orderBy.Fields {
		if field.Desc {
			parts = append(parts, field.Path+" desc")
			continue
		}
		parts = append(parts, field.Path)
	}
	return strings.Join(parts, ", ")
}
