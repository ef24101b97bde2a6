package settings

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/textcase"
)

// StoredShortcut is the persisted form of one shortcut and its rules.
type StoredShortcut struct {
	Trigger string
	Mode    string // quiet, toolbar
	Rules   []rule.Rule
}

// Shortcuts loads the persisted shortcut map. Rules whose case or
// action identifiers no longer parse are skipped rather than failing
// the whole load.
func (s *Store) Shortcuts() []StoredShortcut {
	var out []StoredShortcut
	s.get("shortcuts").ForEach(func(key, value gjson.Result) bool {
		sc := StoredShortcut{
			Trigger: key.String(),
			Mode:    value.Get("mode").String(),
		}
		for _, rv := range value.Get("rules").Array() {
			c, err := textcase.Parse(rv.Get("case").String())
			if err != nil {
				continue
			}
			a, err := action.Parse(rv.Get("action").String())
			if err != nil {
				continue
			}
			sc.Rules = append(sc.Rules, rule.Rule{
				ID:              rv.Get("id").String(),
				Shortcut:        sc.Trigger,
				Case:            c,
				Action:          a,
				Display:         rule.ParseDisplayMode(rv.Get("display").String()),
				Output:          rule.ParseOutputMode(rv.Get("output").String()),
				Preview:         rv.Get("preview").Bool(),
				SaveHistory:     rv.Get("saveHistory").Bool(),
				CopyToClipboard: rv.Get("copyToClipboard").Bool(),
			}.Normalize())
		}
		out = append(out, sc)
		return true
	})
	return out
}

// SetShortcuts replaces the persisted shortcut map.
func (s *Store) SetShortcuts(shortcuts []StoredShortcut) error {
	doc := make(map[string]any, len(shortcuts))
	for _, sc := range shortcuts {
		rules := make([]map[string]any, 0, len(sc.Rules))
		for _, ru := range sc.Rules {
			rules = append(rules, map[string]any{
				"id":              ru.ID,
				"case":            caseID(ru.Case),
				"action":          ru.Action.ID(),
				"display":         ru.Display.String(),
				"output":          ru.Output.String(),
				"preview":         ru.Preview,
				"saveHistory":     ru.SaveHistory,
				"copyToClipboard": ru.CopyToClipboard,
			})
		}
		doc[sc.Trigger] = map[string]any{
			"mode":  sc.Mode,
			"rules": rules,
		}
	}
	if err := s.set("shortcuts", doc); err != nil {
		return fmt.Errorf("settings: shortcuts: %w", err)
	}
	return nil
}

// caseID returns the persisted identifier for a case; skip persists as
// the empty string.
func caseID(c textcase.Case) string {
	if c.IsSkip() {
		return ""
	}
	return c.ID()
}
