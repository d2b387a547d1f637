// Package paginate slices result sets into 1-based pages.
package paginate

import "fmt"

// Slice returns the page-th page of results. Pages are 1-based; a page past
// the end is simply empty.
func Slice[T any](results []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(results) {
		return nil
	}
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// Pages is the number of pages needed for total results.
func Pages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Controls describes which pagination affordances to show.
type Controls struct {
	Prev      bool
	Next      bool
	Indicator string
}

// PageControls applies the display tie-breaks: previous when past page one,
// next while pages remain, an "X/N" indicator whenever more than one page
// exists, and nothing at all for a single page.
func PageControls(page, total, pageSize int) Controls {
	pages := Pages(total, pageSize)
	if pages <= 1 {
		return Controls{}
	}
	return Controls{
		Prev:      page > 1,
		Next:      page < pages,
		Indicator: fmt.Sprintf("%d/%d", page, pages),
	}
}
