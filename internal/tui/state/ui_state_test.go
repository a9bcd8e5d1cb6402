package state

import "testing"

func TestUIState(t *testing.T) {
	s := NewUIState()
	if s.Mode() != TableMode {
		t.Fatalf("initial mode = %v, want TableMode", s.Mode())
	}

	s.SetMode(SearchMode)
	if s.Mode().String() != "SEARCH" {
		t.Errorf("Mode().String() = %q, want SEARCH", s.Mode().String())
	}

	s.SetWindowSize(100, 30)
	if s.Width() != 100 || s.Height() != 30 {
		t.Errorf("size = %dx%d, want 100x30", s.Width(), s.Height())
	}

	s.SetBusy(true)
	if !s.Busy() {
		t.Error("SetBusy(true) not kept")
	}
}
