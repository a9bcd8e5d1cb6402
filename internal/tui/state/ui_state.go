package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	TableMode         Mode = iota // Default mode: browsing the bill table
	BillFormMode                  // Creating or editing a bill with huh
	DeleteConfirmMode             // Confirming bill deletion
	SearchMode                    // Typing a search query (/)
	ReceiptMode                   // Viewing a rendered receipt
	HelpMode                      // Displaying help screen
)

// String returns a short name for the status bar
func (m Mode) String() string {
	switch m {
	case BillFormMode:
		return "FORM"
	case DeleteConfirmMode:
		return "DELETE"
	case SearchMode:
		return "SEARCH"
	case ReceiptMode:
		return "RECEIPT"
	case HelpMode:
		return "HELP"
	default:
		return "TABLE"
	}
}

// UIState manages the user interface state: terminal dimensions, the
// current interaction mode and whether a database operation is running.
type UIState struct {
	width  int
	height int
	mode   Mode

	// busy is set while a service call is in flight; only one runs at a time
	busy bool
}

// NewUIState creates a new UIState in table mode.
func NewUIState() *UIState {
	return &UIState{mode: TableMode}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode { return s.mode }

// SetMode sets the current interaction mode.
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// Width returns the terminal width.
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height.
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Busy reports whether a service call is in flight.
func (s *UIState) Busy() bool { return s.busy }

// SetBusy marks the start or end of a service call.
func (s *UIState) SetBusy(busy bool) { s.busy = busy }
