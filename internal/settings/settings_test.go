package settings_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/settings"
	"github.com/dshills/selact/internal/textcase"
)

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	s := settings.New(filepath.Join(t.TempDir(), "settings.json"))
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestRegexCaseRoundTrip(t *testing.T) {
	s := newStore(t)

	id, err := s.SetRegexCase("ticket", settings.RegexDefinition{
		Name:    "Ticket",
		Pattern: `[A-Z]+-\d+`,
		Flags:   "i",
	})
	if err != nil {
		t.Fatalf("SetRegexCase: %v", err)
	}
	if id != "regexp-ticket" {
		t.Errorf("id = %q", id)
	}

	pattern, flags, ok := s.RegexDef(id)
	if !ok {
		t.Fatal("RegexDef: not found")
	}
	if pattern != `[A-Z]+-\d+` || flags != "i" {
		t.Errorf("got pattern=%q flags=%q", pattern, flags)
	}
}

func TestBadPatternRejectedAtConfigTime(t *testing.T) {
	s := newStore(t)

	_, err := s.SetRegexCase("bad", settings.RegexDefinition{Pattern: `([unclosed`})
	if !errors.Is(err, settings.ErrBadPattern) {
		t.Fatalf("expected ErrBadPattern, got %v", err)
	}
	if _, _, ok := s.RegexDef("regexp-bad"); ok {
		t.Error("rejected definition must not be stored")
	}
}

func TestModelCaseThreshold(t *testing.T) {
	s := newStore(t)

	if _, err := s.SetModelCase("m", settings.ModelDefinition{Threshold: 1.5}); !errors.Is(err, settings.ErrBadThreshold) {
		t.Fatalf("expected ErrBadThreshold, got %v", err)
	}

	id, err := s.SetModelCase("m", settings.ModelDefinition{Name: "M", Threshold: 0.5})
	if err != nil {
		t.Fatalf("SetModelCase: %v", err)
	}
	th, ok := s.ModelThreshold(id)
	if !ok || th != 0.5 {
		t.Errorf("threshold = %v, %v", th, ok)
	}
}

func TestActionDefinitions(t *testing.T) {
	s := newStore(t)

	if _, err := s.SetScriptAction("s", settings.ScriptDefinition{Language: "lua"}); !errors.Is(err, settings.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField for empty code, got %v", err)
	}
	if _, err := s.SetScriptAction("s", settings.ScriptDefinition{Language: "perl", Code: "x"}); !errors.Is(err, settings.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField for unsupported language, got %v", err)
	}

	sid, err := s.SetScriptAction("s", settings.ScriptDefinition{
		Name:     "Upper",
		Language: "lua",
		Code:     "function process(data) return string.upper(data.selection) end",
	})
	if err != nil {
		t.Fatalf("SetScriptAction: %v", err)
	}
	def, ok := s.ScriptDef(sid)
	if !ok || def.Language != "lua" {
		t.Errorf("ScriptDef = %+v, %v", def, ok)
	}

	pid, err := s.SetPromptAction("p", settings.PromptDefinition{
		Name:     "Summarize",
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		Template: "Summarize: {{selection}}",
	})
	if err != nil {
		t.Fatalf("SetPromptAction: %v", err)
	}
	if s.ActionName(pid) != "Summarize" {
		t.Errorf("ActionName = %q", s.ActionName(pid))
	}

	if err := s.DeleteAction(pid); err != nil {
		t.Fatalf("DeleteAction: %v", err)
	}
	if _, ok := s.PromptDef(pid); ok {
		t.Error("definition survived delete")
	}
	if err := s.DeleteAction(pid); !errors.Is(err, settings.ErrUnknownEntry) {
		t.Errorf("expected ErrUnknownEntry, got %v", err)
	}
}

func TestShortcutsRoundTrip(t *testing.T) {
	s := newStore(t)

	in := []settings.StoredShortcut{
		{
			Trigger: "Control+Shift+C",
			Mode:    "quiet",
			Rules: []rule.Rule{
				{
					ID:          "r1",
					Shortcut:    "Control+Shift+C",
					Case:        textcase.Builtin("url"),
					Action:      action.Builtin(action.BuiltinOpenURLs),
					Output:      rule.OutputNone,
					SaveHistory: true,
				},
				{
					ID:     "r2",
					Case:   textcase.Skip(),
					Action: action.Builtin(action.BuiltinCopy),
				},
			},
		},
		{Trigger: "MouseClick+MouseClick", Mode: "toolbar"},
	}
	if err := s.SetShortcuts(in); err != nil {
		t.Fatalf("SetShortcuts: %v", err)
	}

	got := s.Shortcuts()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	var quiet settings.StoredShortcut
	for _, sc := range got {
		if sc.Trigger == "Control+Shift+C" {
			quiet = sc
		}
	}
	if quiet.Mode != "quiet" || len(quiet.Rules) != 2 {
		t.Fatalf("round-trip lost data: %+v", quiet)
	}
	if quiet.Rules[0].Case.ID() != "url" {
		t.Errorf("case = %q", quiet.Rules[0].Case.ID())
	}
	if !quiet.Rules[1].Case.IsSkip() {
		t.Error("skip case lost in round-trip")
	}
	if quiet.Rules[1].Shortcut != "Control+Shift+C" {
		t.Error("rule shortcut not restored from trigger key")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := settings.New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.SetRegexCase("x", settings.RegexDefinition{Pattern: `\d+`}); err != nil {
		t.Fatalf("SetRegexCase: %v", err)
	}
	if err := s.SetBlacklist([]string{"com.example.*"}); err != nil {
		t.Fatalf("SetBlacklist: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2 := settings.New(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, _, ok := s2.RegexDef("regexp-x"); !ok {
		t.Error("definition lost across save/load")
	}
	if bl := s2.Blacklist(); len(bl) != 1 || bl[0] != "com.example.*" {
		t.Errorf("blacklist = %v", bl)
	}
}
