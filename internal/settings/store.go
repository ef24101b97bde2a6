// Package settings is the persisted-state store: user catalogs (custom
// cases and actions), the shortcut rule map, the blacklist, provider
// credentials and the history cap, all kept in one JSON document on
// disk.
//
// Reads go through gjson paths and writes through sjson, so the
// document's unknown fields survive round-trips. Malformed user input
// (a bad regex, an empty required field) is rejected here, at
// configuration time, and never reaches the recognizer or executor
// chains.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Validation errors.
var (
	ErrBadPattern   = errors.New("settings: invalid regular expression")
	ErrEmptyField   = errors.New("settings: required field is empty")
	ErrBadThreshold = errors.New("settings: threshold must be in [0, 1]")
	ErrUnknownEntry = errors.New("settings: no such entry")
)

// Store is the JSON settings document. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	raw  []byte
}

// New creates a store bound to path. Call Load before use.
func New(path string) *Store {
	return &Store{path: path, raw: []byte(`{}`)}
}

// Load reads the document from disk. A missing file leaves the store
// empty and is not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.raw = []byte(`{}`)
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("settings: load: %s is not valid JSON", s.path)
	}
	s.raw = data
	return nil
}

// Save writes the document back to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	data := make([]byte, len(s.raw))
	copy(data, s.raw)
	s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) get(path string) gjson.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gjson.GetBytes(s.raw, path)
}

func (s *Store) set(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := sjson.SetBytes(s.raw, path, value)
	if err != nil {
		return fmt.Errorf("settings: set %s: %w", path, err)
	}
	s.raw = raw
	return nil
}

func (s *Store) delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := sjson.DeleteBytes(s.raw, path)
	if err != nil {
		return fmt.Errorf("settings: delete %s: %w", path, err)
	}
	s.raw = raw
	return nil
}

// HistoryMax returns the configured history ring capacity, or 0 when
// unset (callers apply their default).
func (s *Store) HistoryMax() int {
	return int(s.get("history.max").Int())
}

// SetHistoryMax stores the history ring capacity.
func (s *Store) SetHistoryMax(max int) error {
	return s.set("history.max", max)
}

// Blacklist returns the app-id and website wildcard rules.
func (s *Store) Blacklist() []string {
	var out []string
	for _, v := range s.get("blacklist").Array() {
		out = append(out, v.String())
	}
	return out
}

// SetBlacklist stores the blacklist rules.
func (s *Store) SetBlacklist(rules []string) error {
	return s.set("blacklist", rules)
}

// ProviderKey returns the API key configured for an AI provider.
func (s *Store) ProviderKey(provider string) string {
	return s.get("providers." + provider + ".apiKey").String()
}

// validatePattern compiles the pattern to reject malformed input at
// configuration time.
func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: pattern", ErrEmptyField)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return nil
}
