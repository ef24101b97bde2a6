package shortcut

import (
	"errors"
	"fmt"
	"strings"
)

// Pointer-gesture sentinel triggers. They share the keyboard trigger
// syntax but name no valid key combination, so they can never collide
// with one.
const (
	// GestureDrag fires when a click-drag selection ends.
	GestureDrag = "MouseClick+MouseMove"

	// GestureDoubleClick fires on a double-click that selects text.
	GestureDoubleClick = "MouseClick+MouseClick"
)

// Trigger parse errors.
var (
	ErrEmptyTrigger = errors.New("shortcut: empty trigger")
	ErrBadTrigger   = errors.New("shortcut: invalid trigger")
)

// mod is a keyboard modifier bitmask.
type mod uint8

const (
	modCtrl mod = 1 << iota
	modAlt
	modShift
	modMeta
)

// Trigger is a canonical, comparable trigger identity. The zero value
// is invalid.
type Trigger struct {
	mods    mod
	key     string
	gesture string
}

// ParseTrigger parses a trigger specification into canonical form.
// Keyboard triggers are "+"-joined modifier names plus a final key
// ("ctrl+shift+c" parses to "Ctrl+Shift+C"); the pointer-gesture
// sentinels pass through unchanged.
func ParseTrigger(spec string) (Trigger, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Trigger{}, ErrEmptyTrigger
	}

	switch spec {
	case GestureDrag, GestureDoubleClick:
		return Trigger{gesture: spec}, nil
	}

	parts := strings.Split(spec, "+")
	var mods mod
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if !ok {
			return Trigger{}, fmt.Errorf("%w: unknown modifier %q", ErrBadTrigger, p)
		}
		mods |= m
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Trigger{}, fmt.Errorf("%w: missing key in %q", ErrBadTrigger, spec)
	}
	key, ok := canonicalKey(keyPart)
	if !ok {
		return Trigger{}, fmt.Errorf("%w: unknown key %q", ErrBadTrigger, keyPart)
	}
	return Trigger{mods: mods, key: key}, nil
}

// IsGesture reports whether the trigger is a pointer gesture.
func (t Trigger) IsGesture() bool { return t.gesture != "" }

// String returns the canonical trigger form: modifiers in fixed
// Ctrl, Alt, Shift, Meta order, "+"-joined, then the key.
func (t Trigger) String() string {
	if t.gesture != "" {
		return t.gesture
	}
	var parts []string
	if t.mods&modCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if t.mods&modAlt != 0 {
		parts = append(parts, "Alt")
	}
	if t.mods&modShift != 0 {
		parts = append(parts, "Shift")
	}
	if t.mods&modMeta != 0 {
		parts = append(parts, "Meta")
	}
	parts = append(parts, t.key)
	return strings.Join(parts, "+")
}

func modifierFromName(name string) (mod, bool) {
	switch name {
	case "ctrl", "control":
		return modCtrl, true
	case "alt", "option", "opt":
		return modAlt, true
	case "shift":
		return modShift, true
	case "meta", "cmd", "command", "super", "win":
		return modMeta, true
	default:
		return 0, false
	}
}

// specialKeys maps lowercase key names to their canonical spelling.
var specialKeys = map[string]string{
	"enter":     "Enter",
	"return":    "Enter",
	"escape":    "Escape",
	"esc":       "Escape",
	"space":     "Space",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"insert":    "Insert",
}

func canonicalKey(name string) (string, bool) {
	lower := strings.ToLower(name)
	if canon, ok := specialKeys[lower]; ok {
		return canon, true
	}
	// Function keys: f1..f24.
	if len(lower) >= 2 && len(lower) <= 3 && lower[0] == 'f' && isDigits(lower[1:]) {
		return strings.ToUpper(lower), true
	}
	// Single printable character.
	runes := []rune(name)
	if len(runes) == 1 && runes[0] > ' ' {
		return strings.ToUpper(name), true
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
