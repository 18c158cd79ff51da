package sqlite

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isUniqueViolation reports whether err comes from a uniqueness constraint,
// across both supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	// modernc.org/sqlite reports constraint failures in the error text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
