// Package app provides centralized application state for the NumCrypt GUI.
//
// The State struct holds everything the UI layer displays: the active page,
// the current entry text, the last result, the status line, and the
// in-session history of performed transforms. All access is thread-safe via
// sync.RWMutex so event handlers and tests can share a State freely.
package app

import (
	"image/color"
	"sync"
	"time"

	"NumCrypt/internal/crypto"
	"NumCrypt/internal/util"
)

// Page identifies which screen the GUI is showing.
type Page int

const (
	PageHome Page = iota
	PageEncrypt
	PageDecrypt
)

// Record is one performed transform, kept in the in-session history.
type Record struct {
	Mode   string // "encrypt" or "decrypt"
	Input  string
	Output string
	When   time.Time
}

// State holds the application state that persists across operations.
type State struct {
	mu sync.RWMutex

	// Navigation
	Page Page

	// Current entry and last result
	Input  string
	Result string

	// Status line
	MainStatus      string
	MainStatusColor color.RGBA

	// In-session history of transforms, oldest first. Never persisted.
	History []Record

	// Clipboard callback (set by the UI)
	SetClipboard func(text string)
}

// NewState creates a new application state with default values.
func NewState() *State {
	return &State{
		Page:            PageHome,
		MainStatus:      "Ready",
		MainStatusColor: util.WHITE,
	}
}

// Reset clears entry, result, and status back to initial values.
// Navigation and history are preserved.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Input = ""
	s.Result = ""
	s.MainStatus = "Ready"
	s.MainStatusColor = util.WHITE
}

// ShowPage navigates to the given page and clears the entry, matching the
// original behavior of arriving at a fresh form.
func (s *State) ShowPage(p Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Page = p
	s.Input = ""
}

// CurrentPage returns the active page.
func (s *State) CurrentPage() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Page
}

// Mode returns "encrypt" or "decrypt" for the active page, or "" on the
// home page.
func (s *State) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.Page {
	case PageEncrypt:
		return "encrypt"
	case PageDecrypt:
		return "decrypt"
	default:
		return ""
	}
}

// SetInput stores the current entry text.
func (s *State) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Input = text
}

// CurrentInput returns the current entry text.
func (s *State) CurrentInput() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Input
}

// CanStart returns true if the current entry is a complete 6-digit number.
func (s *State) CanStart() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := crypto.ParseSequence(s.Input)
	return err == nil
}

// SetStatus updates the main status display.
func (s *State) SetStatus(text string, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MainStatus = text
	s.MainStatusColor = c
}

// Status returns the main status text.
func (s *State) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MainStatus
}

// RecordResult stores a completed transform: the result becomes the current
// result, the entry is cleared, and the transform is appended to the history.
func (s *State) RecordResult(mode, input, output string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Result = output
	s.Input = ""
	s.History = append(s.History, Record{
		Mode:   mode,
		Input:  input,
		Output: output,
		When:   time.Now(),
	})
}

// LastResult returns the most recent transform result.
func (s *State) LastResult() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Result
}

// Records returns a copy of the transform history, oldest first.
func (s *State) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.History))
	copy(out, s.History)
	return out
}

// CopyResult sends the last result to the clipboard callback.
// Returns false if there is no result or no clipboard is installed.
func (s *State) CopyResult() bool {
	s.mu.RLock()
	result := s.Result
	clipboard := s.SetClipboard
	s.mu.RUnlock()

	if result == "" || clipboard == nil {
		return false
	}
	clipboard(result)
	return true
}
