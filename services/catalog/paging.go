package catalog

import "freevector_app_go/models"

// Truncate returns the first limit records for display without reordering.
// A non-positive limit means DisplayLimit.
func Truncate(records []models.IconRecord, limit int) []models.IconRecord {
	if limit <= 0 {
		limit = DisplayLimit
	}
	if len(records) <= limit {
		return records
	}
	return records[:limit]
}

// Page returns the window [offset, offset+limit) of records. An offset past
// the end yields an empty page.
func Page(records []models.IconRecord, offset, limit int) []models.IconRecord {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []models.IconRecord{}
	}
	return Truncate(records[offset:], limit)
}

// PageCount returns how many pages of size perPage the total spans (at least 1)
func PageCount(total, perPage int) int {
	if perPage <= 0 {
		perPage = DisplayLimit
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
