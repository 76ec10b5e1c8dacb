// Package pager splits admin lists into pages.
package pager

import "github.com/gofiber/fiber/v2"

const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 25
	// MaxPageSize caps the pageSize query parameter.
	MaxPageSize = 100
)

// Data describes the page being rendered.
type Data struct {
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasPrevPage bool
	HasNextPage bool
	PrevPage    int
	NextPage    int
}

// Params parses and normalizes the page and pageSize query parameters.
func Params(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// Slice returns the items of page and the matching Data. Pages past the end
// are clamped to the last page.
func Slice[T any](items []T, page, pageSize int) ([]T, Data) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page = max(min(page, totalPages), 1)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	return items[start:end], Data{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
}
