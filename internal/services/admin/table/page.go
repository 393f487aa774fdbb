package table

import "github.com/louisbranch/conectareparo/internal/platform/pagination"

// WindowSize is how many consecutive page numbers the pager shows.
const WindowSize = 5

// Page describes one page of a result set. Number is 1-based and StartItem
// and EndItem are 1-based positions, both zero for an empty result.
type Page struct {
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
	StartItem     int64
	EndItem       int64
}

// NewPage clamps number into range and derives the item bounds.
func NewPage(number, size int, total int64) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	totalPages := pagination.TotalPages(int(total), size)
	number = pagination.ClampPageNumber(number, totalPages)
	if totalPages == 0 {
		number = 1
	}
	page := Page{Number: number, Size: size, TotalElements: total, TotalPages: totalPages}
	if total == 0 {
		return page
	}
	page.StartItem = int64(number-1)*int64(size) + 1
	page.EndItem = min(int64(number)*int64(size), total)
	return page
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// WindowEntry is a pager slot: a 1-based page number or an ellipsis.
type WindowEntry struct {
	Page     int
	Ellipsis bool
}

// Window lists the pager slots around current. Up to visible consecutive
// pages are shown; the first and last pages are always present and a gap of
// more than one page collapses into an ellipsis.
func Window(current, total, visible int) []WindowEntry {
	if total <= 0 {
		return nil
	}
	if visible <= 0 {
		visible = WindowSize
	}
	cur := pagination.ClampPageNumber(current, total) - 1
	half := visible / 2
	left := max(0, cur-half)
	right := min(total-1, left+visible-1)
	if right-left+1 < visible {
		left = max(0, right-visible+1)
	}

	entries := make([]WindowEntry, 0, visible+4)
	if left > 0 {
		entries = append(entries, WindowEntry{Page: 1})
		if left > 1 {
			entries = append(entries, WindowEntry{Ellipsis: true})
		}
	}
	for i := left; i <= right; i++ {
		entries = append(entries, WindowEntry{Page: i + 1})
	}
	if right < total-1 {
		if right < total-2 {
			entries = append(entries, WindowEntry{Ellipsis: true})
		}
		entries = append(entries, WindowEntry{Page: total})
	}
	return entries
}
