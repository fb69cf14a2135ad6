package utils

import "strconv"

// Pagination is a parsed page request. Skip is derived from Page and Limit.
type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// ParsePagination reads raw page/limit query values leniently.
// Unparsable or non-positive values fall back to page 1 and defaultLimit;
// limits above maxLimit are capped.
func ParsePagination(rawPage, rawLimit string, defaultLimit, maxLimit int) Pagination {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}

	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}

	return pages
}
