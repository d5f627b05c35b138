package common

import "strconv"

// PageSize is the fixed page length for all paginated listings.
const PageSize = 6

// TotalPages returns the number of pages needed for totalRows rows,
// zero when there are no rows.
func TotalPages(totalRows int64) int {
	if totalRows <= 0 {
		return 0
	}
	return int((totalRows + PageSize - 1) / PageSize)
}

// ParsePage parses a page query parameter, defaulting to 1 for missing,
// non-numeric or non-positive input.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageOffset converts a 1-based page number into a row offset.
func PageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
