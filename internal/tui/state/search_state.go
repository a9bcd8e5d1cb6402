package state

import "github.com/thenoetrevino/billform/internal/models"

// maxQueryLength caps the search query, in runes
const maxQueryLength = 100

// SearchState manages the table filter.
// Filtering is live: the table shows matching rows while the query is typed.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates whether the filter stays applied after leaving search mode
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendChar appends a character to the search query.
// Returns true if the character was added, false if query is at max length.
func (s *SearchState) AppendChar(c rune) bool {
	if len([]rune(s.Query)) >= maxQueryLength {
		return false
	}
	s.Query += string(c)
	return true
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	runes := []rune(s.Query)
	if len(runes) == 0 {
		return false
	}
	s.Query = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and removes the filter.
func (s *SearchState) Clear() {
	s.Query = ""
	s.IsActive = false
}

// Activate keeps the filter applied after leaving search mode.
// An empty query leaves nothing to apply.
func (s *SearchState) Activate() {
	s.IsActive = s.Query != ""
}

// Filter returns the rows matching the current query
func (s *SearchState) Filter(rows []models.BillRow) []models.BillRow {
	return models.FilterBillRows(rows, s.Query)
}
