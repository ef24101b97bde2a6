// Package rule defines the bound (case, action, options) value object
// attached to a shortcut. Rules are plain values: the registry copies
// them in and out and never hands out aliases.
package rule

import (
	"errors"
	"fmt"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/textcase"
)

// Validation errors.
var (
	ErrMissingID = errors.New("rule: missing rule id")
)

// OutputMode controls how a textual action result is routed.
type OutputMode int

const (
	// OutputReplace substitutes the result for the selected text.
	OutputReplace OutputMode = iota

	// OutputPopup shows the result in a popup surface.
	OutputPopup

	// OutputNone discards the result.
	OutputNone
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputReplace:
		return "replace"
	case OutputPopup:
		return "popup"
	case OutputNone:
		return "none"
	default:
		return fmt.Sprintf("OutputMode(%d)", m)
	}
}

// ParseOutputMode parses a stored mode string. Unknown values default to
// popup, the least destructive routing.
func ParseOutputMode(s string) OutputMode {
	switch s {
	case "replace":
		return OutputReplace
	case "none":
		return OutputNone
	default:
		return OutputPopup
	}
}

// DisplayMode controls how a rule is rendered in a toolbar.
type DisplayMode int

const (
	// DisplayIcon shows only the action icon.
	DisplayIcon DisplayMode = iota

	// DisplayLabel shows only the action label.
	DisplayLabel

	// DisplayBoth shows icon and label.
	DisplayBoth
)

// String returns the display mode name.
func (m DisplayMode) String() string {
	switch m {
	case DisplayIcon:
		return "icon"
	case DisplayLabel:
		return "label"
	case DisplayBoth:
		return "both"
	default:
		return fmt.Sprintf("DisplayMode(%d)", m)
	}
}

// ParseDisplayMode parses a stored display mode string, defaulting to
// icon.
func ParseDisplayMode(s string) DisplayMode {
	switch s {
	case "label":
		return DisplayLabel
	case "both":
		return DisplayBoth
	default:
		return DisplayIcon
	}
}

// Rule binds a case to an action with routing options, attached to one
// shortcut trigger.
type Rule struct {
	// ID uniquely identifies the rule within its shortcut.
	ID string

	// Shortcut is the normalized trigger this rule belongs to.
	Shortcut string

	// Case gates the action; the skip case always matches.
	Case textcase.Case

	// Action runs when the case matches.
	Action action.Action

	// Display is how the rule appears in an interactive toolbar.
	Display DisplayMode

	// Output routes the textual result.
	Output OutputMode

	// Preview returns the result to the caller instead of applying it.
	Preview bool

	// SaveHistory appends an Entry after a successful dispatch.
	SaveHistory bool

	// CopyToClipboard additionally copies a replaced result.
	CopyToClipboard bool
}

// Normalize enforces the output-mode constraints: actions with no textual
// result force OutputNone, and streaming prompt actions force OutputPopup
// (a stream cannot replace the selection in place).
func (r Rule) Normalize() Rule {
	switch {
	case r.Action.NoResult():
		r.Output = OutputNone
	case r.Action.Kind() == action.KindPrompt:
		r.Output = OutputPopup
	}
	return r
}

// Validate checks structural requirements before registration.
func (r Rule) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}
	return nil
}

// Key is the (case, action) pair used for duplicate detection within one
// shortcut's rule list.
type Key struct {
	Case   textcase.Case
	Action action.Action
}

// DedupKey returns the rule's (case, action) pair.
func (r Rule) DedupKey() Key {
	return Key{Case: r.Case, Action: r.Action}
}
