// Package feed composes ordered post sequences into fixed-size pages.
package feed

import (
	"strconv"

	"quill/internal/models"
)

// Page is one slice of a feed plus the navigation facts a client needs.
type Page struct {
	Items       []*models.Post `json:"items"`
	Number      int            `json:"number"`
	TotalPages  int            `json:"total_pages"`
	TotalItems  int            `json:"total_items"`
	HasPrevious bool           `json:"has_previous"`
	HasNext     bool           `json:"has_next"`
}

// Paginate cuts the ordered post sequence into pages of pageSize and returns
// the page addressed by rawPage (the raw query value).
//
// Page resolution clamps instead of erroring: a missing, non-numeric or
// non-positive value resolves to page 1, and a number past the end resolves
// to the last page. An empty sequence still yields a valid page 1 with no
// items.
func Paginate(items []*models.Post, pageSize int, rawPage string) Page {
	if pageSize <= 0 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil || number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	pageItems := items[start:end]
	if pageItems == nil {
		pageItems = []*models.Post{}
	}

	return Page{
		Items:       pageItems,
		Number:      number,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: number > 1,
		HasNext:     number < totalPages,
	}
}
