package utils

import (
	"net/http"
	"strconv"
)

// PaginationParams contains skip/limit pagination parameters
type PaginationParams struct {
	Skip  int
	Limit int
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 100

// MaxLimit is the maximum number of items per page
const MaxLimit = 500

// ParsePagination parses skip/limit parameters from the query string
func ParsePagination(r *http.Request) PaginationParams {
	skip := parseIntQuery(r.URL.Query().Get("skip"), 0)
	limit := parseIntQuery(r.URL.Query().Get("limit"), DefaultLimit)

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PaginationParams{Skip: skip, Limit: limit}
}

func parseIntQuery(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}
