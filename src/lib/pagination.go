package lib

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination is the shared list envelope block. TotalPages is
// ceil(total/limit); an empty result set has zero pages and no next page.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the envelope block from the total row count and the
// requested page/limit.
func NewPagination(total int64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Offset is the number of documents to skip for the current page.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.Limit
}

// ParsePageLimit reads page/limit query params, falling back to page 1 and
// the endpoint's own default limit. Limit is capped so a caller cannot ask
// for unbounded result sets.
func ParsePageLimit(c *fiber.Ctx, defaultLimit, maxLimit int) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// PageSlice returns the in-memory page [offset, offset+limit) of n items,
// used when embedded documents are flattened and paginated after the query.
func PageSlice(n, page, limit int) (int, int) {
	start := (page - 1) * limit
	if start >= n {
		return 0, 0
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}
