package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination parses page and limit from the query string. Missing,
// non-numeric, zero or negative values collapse to the defaults (1, 10).
func ParsePagination(c *gin.Context) Pagination {
	return Pagination{
		Page:  parseQueryInt(c, "page", constants.DefaultPage),
		Limit: parseQueryInt(c, "limit", constants.DefaultLimit),
	}
}

// ValidatePagination normalizes raw pagination values, applying the same
// coercion as ParsePagination.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset computes the number of records to skip for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages calculates the page count for a given total.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
