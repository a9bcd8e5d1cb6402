package models

import "strings"

// Matches reports whether any displayed cell of the row contains query,
// ignoring case. The query is expected to be trimmed and lower-cased already.
func (r BillRow) Matches(query string) bool {
	if query == "" {
		return true
	}
	for _, cell := range r.Cells() {
		if strings.Contains(strings.ToLower(cell), query) {
			return true
		}
	}
	return false
}

// FilterBillRows returns the rows matching the search text.
// An empty (or all-whitespace) search keeps every row.
func FilterBillRows(rows []BillRow, search string) []BillRow {
	query := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]BillRow, 0, len(rows))
	for _, row := range rows {
		if row.Matches(query) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
