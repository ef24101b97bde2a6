package settings

import (
	"fmt"
	"strings"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/textcase"
)

// Script languages a ScriptDefinition may declare.
const (
	ScriptLua        = "lua"
	ScriptJavaScript = "javascript"
	ScriptPython     = "python"
)

// RegexDefinition is a user-defined regex case.
type RegexDefinition struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Flags   string `json:"flags,omitempty"`
}

// ModelDefinition is a user-trained model case.
type ModelDefinition struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
}

// ScriptDefinition is a user script action.
type ScriptDefinition struct {
	Name     string `json:"name"`
	Language string `json:"language"` // lua, javascript, python
	Code     string `json:"code"`
}

// PromptDefinition is a user AI-prompt action.
type PromptDefinition struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // anthropic, openai
	Model    string `json:"model"`
	System   string `json:"system,omitempty"`
	Template string `json:"template"`
}

// SearcherDefinition is a user web-search action.
type SearcherDefinition struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Browser string `json:"browser,omitempty"`
}

// RegexDef implements recognize.CustomSource.
func (s *Store) RegexDef(id string) (pattern, flags string, ok bool) {
	v := s.get("cases." + escapeKey(id))
	if !v.Exists() {
		return "", "", false
	}
	return v.Get("pattern").String(), v.Get("flags").String(), true
}

// ModelThreshold implements recognize.CustomSource.
func (s *Store) ModelThreshold(id string) (float64, bool) {
	v := s.get("cases." + escapeKey(id))
	if !v.Exists() {
		return 0, false
	}
	return v.Get("threshold").Float(), true
}

// SetRegexCase validates and stores a custom regex case, returning the
// prefixed case id.
func (s *Store) SetRegexCase(id string, def RegexDefinition) (string, error) {
	if err := validatePattern(def.Pattern); err != nil {
		return "", err
	}
	full := textcase.CustomRegex(id).ID()
	return full, s.set("cases."+escapeKey(full), def)
}

// SetModelCase validates and stores a custom model case, returning the
// prefixed case id.
func (s *Store) SetModelCase(id string, def ModelDefinition) (string, error) {
	if def.Threshold < 0 || def.Threshold > 1 {
		return "", ErrBadThreshold
	}
	full := textcase.CustomModel(id).ID()
	return full, s.set("cases."+escapeKey(full), def)
}

// DeleteCase removes a custom case definition.
func (s *Store) DeleteCase(id string) error {
	if !s.get("cases." + escapeKey(id)).Exists() {
		return fmt.Errorf("%w: case %s", ErrUnknownEntry, id)
	}
	return s.delete("cases." + escapeKey(id))
}

// ScriptDef returns a user script definition.
func (s *Store) ScriptDef(id string) (ScriptDefinition, bool) {
	v := s.get("actions." + escapeKey(id))
	if !v.Exists() {
		return ScriptDefinition{}, false
	}
	return ScriptDefinition{
		Name:     v.Get("name").String(),
		Language: v.Get("language").String(),
		Code:     v.Get("code").String(),
	}, true
}

// PromptDef returns a user prompt definition.
func (s *Store) PromptDef(id string) (PromptDefinition, bool) {
	v := s.get("actions." + escapeKey(id))
	if !v.Exists() {
		return PromptDefinition{}, false
	}
	return PromptDefinition{
		Name:     v.Get("name").String(),
		Provider: v.Get("provider").String(),
		Model:    v.Get("model").String(),
		System:   v.Get("system").String(),
		Template: v.Get("template").String(),
	}, true
}

// SearcherDef returns a user searcher definition.
func (s *Store) SearcherDef(id string) (SearcherDefinition, bool) {
	v := s.get("actions." + escapeKey(id))
	if !v.Exists() {
		return SearcherDefinition{}, false
	}
	return SearcherDefinition{
		Name:    v.Get("name").String(),
		URL:     v.Get("url").String(),
		Browser: v.Get("browser").String(),
	}, true
}

// SetScriptAction validates and stores a script action, returning the
// prefixed action id.
func (s *Store) SetScriptAction(id string, def ScriptDefinition) (string, error) {
	if strings.TrimSpace(def.Code) == "" {
		return "", fmt.Errorf("%w: code", ErrEmptyField)
	}
	switch def.Language {
	case ScriptLua, ScriptJavaScript, ScriptPython:
	default:
		return "", fmt.Errorf("%w: language %q", ErrEmptyField, def.Language)
	}
	full := action.Script(id).ID()
	return full, s.set("actions."+escapeKey(full), def)
}

// SetPromptAction validates and stores a prompt action, returning the
// prefixed action id.
func (s *Store) SetPromptAction(id string, def PromptDefinition) (string, error) {
	if strings.TrimSpace(def.Template) == "" {
		return "", fmt.Errorf("%w: template", ErrEmptyField)
	}
	if def.Provider == "" || def.Model == "" {
		return "", fmt.Errorf("%w: provider/model", ErrEmptyField)
	}
	full := action.Prompt(id).ID()
	return full, s.set("actions."+escapeKey(full), def)
}

// SetSearcherAction validates and stores a searcher action, returning
// the prefixed action id.
func (s *Store) SetSearcherAction(id string, def SearcherDefinition) (string, error) {
	if strings.TrimSpace(def.URL) == "" {
		return "", fmt.Errorf("%w: url", ErrEmptyField)
	}
	full := action.Searcher(id).ID()
	return full, s.set("actions."+escapeKey(full), def)
}

// DeleteAction removes a user action definition.
func (s *Store) DeleteAction(id string) error {
	if !s.get("actions." + escapeKey(id)).Exists() {
		return fmt.Errorf("%w: action %s", ErrUnknownEntry, id)
	}
	return s.delete("actions." + escapeKey(id))
}

// CaseName returns the display name stored for a custom case id,
// falling back to the id.
func (s *Store) CaseName(id string) string {
	if name := s.get("cases." + escapeKey(id) + ".name").String(); name != "" {
		return name
	}
	return id
}

// ActionName returns the display name stored for a user action id,
// falling back to the id.
func (s *Store) ActionName(id string) string {
	if name := s.get("actions." + escapeKey(id) + ".name").String(); name != "" {
		return name
	}
	return id
}

// escapeKey escapes gjson path metacharacters in map keys.
func escapeKey(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}
