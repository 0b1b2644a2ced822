// Package app provides application state management with Fyne data binding support.
package app

import (
	"fyne.io/fyne/v2/data/binding"
)

// BoundState provides Fyne data bindings for the labels that follow State.
// Widgets created with NewLabelWithData update automatically when these
// bindings change, so the UI never calls SetText by hand for them.
type BoundState struct {
	// Last transform result, shown in the result dialog
	Result binding.String

	// Main status line text
	Status binding.String
}

// NewBoundState creates a new BoundState with default values.
func NewBoundState() *BoundState {
	b := &BoundState{
		Result: binding.NewString(),
		Status: binding.NewString(),
	}
	_ = b.Status.Set("Ready")
	return b
}

// SyncFromState copies values from a State to the bindings.
// Call this after modifying State to update bound widgets.
func (b *BoundState) SyncFromState(s *State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_ = b.Result.Set(s.Result)
	_ = b.Status.Set(s.MainStatus)
}
