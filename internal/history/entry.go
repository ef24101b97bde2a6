// Package history records dispatched actions.
//
// Entries live in a bounded in-memory ring (oldest dropped on overflow)
// and are optionally persisted to sqlite alongside the AI response
// cache. Recognizers never touch entries; only the executor appends
// them and only later user interaction (an AI chat continuation)
// annotates the response.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one persisted record of a dispatched action.
type Entry struct {
	// ID uniquely identifies the entry.
	ID string `json:"id"`

	// Shortcut is the normalized trigger that fired.
	Shortcut string `json:"shortcut"`

	// Datetime is when the action was dispatched.
	Datetime time.Time `json:"datetime"`

	// Clipboard is the clipboard snapshot at dispatch time.
	Clipboard string `json:"clipboard"`

	// Selection is the captured text the action ran on.
	Selection string `json:"selection"`

	// CaseLabel names the matched case, empty for skip.
	CaseLabel string `json:"caseLabel,omitempty"`

	// ActionType is the action kind name.
	ActionType string `json:"actionType,omitempty"`

	// ActionLabel is the action's display label.
	ActionLabel string `json:"actionLabel,omitempty"`

	// Result is the action's textual result, if any.
	Result string `json:"result,omitempty"`

	// IsError marks a result that is an error message rather than real
	// output.
	IsError bool `json:"isError,omitempty"`

	// Provider and Model describe the AI backend for prompt actions.
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	// Response accumulates a streamed AI reply. Populated incrementally;
	// the entry itself is finalized at invocation time.
	Response string `json:"response,omitempty"`
}

// NewEntry creates an entry stamped with a fresh id and the current
// time.
func NewEntry(shortcut, clipboard, selection string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Shortcut:  shortcut,
		Datetime:  time.Now(),
		Clipboard: clipboard,
		Selection: selection,
	}
}
