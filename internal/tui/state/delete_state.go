package state

import "github.com/charmbracelet/huh"

// DeleteState holds the pending deletion and its confirmation form.
type DeleteState struct {
	form *huh.Form

	BillID  int64
	Label   string // "'Pen' for Ann", shown in the prompt
	Confirm bool
}

// NewDeleteState creates an empty DeleteState.
func NewDeleteState() *DeleteState {
	return &DeleteState{}
}

// Form returns the confirmation form.
func (s *DeleteState) Form() *huh.Form { return s.form }

// SetForm sets the confirmation form.
func (s *DeleteState) SetForm(form *huh.Form) { s.form = form }

// Start records the bill awaiting confirmation. Confirm defaults to no.
func (s *DeleteState) Start(billID int64, label string) {
	s.BillID = billID
	s.Label = label
	s.Confirm = false
}

// Clear forgets the pending deletion.
func (s *DeleteState) Clear() {
	*s = DeleteState{}
}
