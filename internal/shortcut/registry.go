package shortcut

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/selact/internal/rule"
)

// Registry errors.
var (
	ErrDuplicateRule = errors.New("shortcut: duplicate rule")
	ErrRuleNotFound  = errors.New("shortcut: rule not found")
	ErrNotRegistered = errors.New("shortcut: trigger not registered")
	ErrNotEmpty      = errors.New("shortcut: rule list not empty")
)

// Mode is a shortcut's execution mode.
type Mode int

const (
	// ModeQuiet executes the first matching rule immediately.
	ModeQuiet Mode = iota

	// ModeToolbar surfaces all matching rules for interactive
	// selection.
	ModeToolbar
)

// ParseMode parses a stored mode name. Unknown names default to quiet.
func ParseMode(s string) Mode {
	if s == "toolbar" {
		return ModeToolbar
	}
	return ModeQuiet
}

// String returns the stored mode name.
func (m Mode) String() string {
	if m == ModeToolbar {
		return "toolbar"
	}
	return "quiet"
}

// Backend binds keyboard triggers with the OS hotkey layer. Pointer
// gestures are always live and never pass through the backend.
type Backend interface {
	Bind(trigger string) error
	Unbind(trigger string) error
}

// NopBackend is a Backend that does nothing.
type NopBackend struct{}

func (NopBackend) Bind(string) error   { return nil }
func (NopBackend) Unbind(string) error { return nil }

type binding struct {
	trigger Trigger
	mode    Mode
	rules   []rule.Rule
}

// Registry owns the trigger-to-rule-list map. All mutation is checked
// before any state changes: a rejected registration leaves both the
// map and the backend untouched.
type Registry struct {
	mu       sync.RWMutex
	backend  Backend
	bindings map[string]*binding
}

// NewRegistry creates an empty registry over the given backend. A nil
// backend behaves as NopBackend.
func NewRegistry(backend Backend) *Registry {
	if backend == nil {
		backend = NopBackend{}
	}
	return &Registry{
		backend:  backend,
		bindings: make(map[string]*binding),
	}
}

// Register appends a rule to the trigger's list, binding the trigger
// with the backend first when this is its first keyboard rule. The
// rule is rejected before any mutation when its id is already present
// or another rule shares its (case, action) pair.
func (r *Registry) Register(t Trigger, mode Mode, ru rule.Rule) error {
	ru = ru.Normalize()
	ru.Shortcut = t.String()
	if err := ru.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.bindings[t.String()]
	if exists {
		key := ru.DedupKey()
		for _, existing := range b.rules {
			if existing.ID == ru.ID {
				return fmt.Errorf("%w: id %q", ErrDuplicateRule, ru.ID)
			}
			if existing.DedupKey() == key {
				return fmt.Errorf("%w: case/action pair on %s", ErrDuplicateRule, t)
			}
		}
		if len(b.rules) == 0 && !t.IsGesture() {
			if err := r.backend.Bind(t.String()); err != nil {
				return fmt.Errorf("shortcut: bind %s: %w", t, err)
			}
		}
		b.mode = mode
		b.rules = append(b.rules, ru)
		return nil
	}

	if !t.IsGesture() {
		if err := r.backend.Bind(t.String()); err != nil {
			return fmt.Errorf("shortcut: bind %s: %w", t, err)
		}
	}
	r.bindings[t.String()] = &binding{trigger: t, mode: mode, rules: []rule.Rule{ru}}
	return nil
}

// Unregister removes a rule by id. When the last rule of a keyboard
// trigger is removed the trigger is unbound from the backend; the
// shortcut itself stays registered until Delete.
func (r *Registry) Unregister(t Trigger, ruleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.bindings[t.String()]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}

	idx := -1
	for i, ru := range b.rules {
		if ru.ID == ruleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %q", ErrRuleNotFound, ruleID)
	}

	b.rules = append(b.rules[:idx], b.rules[idx+1:]...)
	if len(b.rules) == 0 && !t.IsGesture() {
		if err := r.backend.Unbind(t.String()); err != nil {
			return fmt.Errorf("shortcut: unbind %s: %w", t, err)
		}
	}
	return nil
}

// Delete removes an empty shortcut. Deleting a shortcut that still has
// rules fails; there is no implicit cleanup path.
func (r *Registry) Delete(t Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.bindings[t.String()]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}
	if len(b.rules) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, t)
	}
	delete(r.bindings, t.String())
	return nil
}

// Lookup returns the mode and a copy of the rule list for a trigger
// string in canonical form.
func (r *Registry) Lookup(trigger string) (Mode, []rule.Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.bindings[trigger]
	if !exists {
		return ModeQuiet, nil, false
	}
	rules := make([]rule.Rule, len(b.rules))
	copy(rules, b.rules)
	return b.mode, rules, true
}

// Triggers returns the canonical trigger strings currently registered.
func (r *Registry) Triggers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.bindings))
	for t := range r.bindings {
		out = append(out, t)
	}
	return out
}

// Suspend releases every bound keyboard trigger while leaving the rule
// map intact. Gestures are unaffected.
func (r *Registry) Suspend() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, b := range r.bindings {
		if !b.trigger.IsGesture() && len(b.rules) > 0 {
			_ = r.backend.Unbind(key)
		}
	}
}

// Restore re-binds every keyboard trigger released by Suspend.
func (r *Registry) Restore() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, b := range r.bindings {
		if !b.trigger.IsGesture() && len(b.rules) > 0 {
			_ = r.backend.Bind(key)
		}
	}
}

// Reset drops every binding, unbinding keyboard triggers as it goes.
// Used when reloading shortcuts from settings.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, b := range r.bindings {
		if !b.trigger.IsGesture() && len(b.rules) > 0 {
			_ = r.backend.Unbind(key)
		}
		delete(r.bindings, key)
	}
}
