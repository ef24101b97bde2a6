package execute_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/execute"
	"github.com/dshills/selact/internal/execute/provider"
	"github.com/dshills/selact/internal/history"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/settings"
	"github.com/dshills/selact/internal/textcase"
)

type fakeSurface struct {
	mu        sync.Mutex
	mainShown int
	popups    []history.Entry
	chunks    []string
}

func (f *fakeSurface) ShowMain() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mainShown++
}

func (f *fakeSurface) ShowPopup(entry history.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.popups = append(f.popups, entry)
}

func (f *fakeSurface) AppendResponse(entryID, chunk string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chunks = append(f.chunks, chunk)
}

func (f *fakeSurface) popupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.popups)
}

func (f *fakeSurface) streamed() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.chunks, "")
}

type fakeClipboard struct {
	mu      sync.Mutex
	content string
	writes  int
}

func (f *fakeClipboard) Read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content, nil
}

func (f *fakeClipboard) Write(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = text
	f.writes++
	return nil
}

type fakeOpener struct {
	mu    sync.Mutex
	urls  []string
	paths []string
}

func (f *fakeOpener) OpenURL(rawURL, browser string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, rawURL)
	return nil
}

func (f *fakeOpener) OpenPath(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return nil
}

// fakeProvider replays canned chunks synchronously into the session
// buffer before returning it.
type fakeProvider struct {
	chunks []string
	err    error
	calls  int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Stream(ctx context.Context, req provider.Request) (*provider.Session, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	_, cancel := context.WithCancel(ctx)
	sess := provider.NewSession(cancel)
	for _, c := range f.chunks {
		sess.Emit(c)
	}
	sess.Close()
	return sess, nil
}

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	return settings.New(filepath.Join(t.TempDir(), "settings.json"))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestExecuteBuiltinReplace(t *testing.T) {
	var replaced string
	clip := &fakeClipboard{}
	ex := execute.New(execute.Config{
		Settings:  newStore(t),
		Clipboard: clip,
		Replace:   func(text string) error { replaced = text; return nil },
	})

	ru := rule.Rule{
		ID:              "r1",
		Action:          mustAction(t, "to-upper-case"),
		Output:          rule.OutputReplace,
		CopyToClipboard: true,
	}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "hello"})

	if !res.HasText || res.IsError {
		t.Fatalf("Execute() = %+v, want text result", res)
	}
	if res.Text != "HELLO" {
		t.Errorf("Text = %q, want %q", res.Text, "HELLO")
	}
	if replaced != "HELLO" {
		t.Errorf("replaced = %q, want %q", replaced, "HELLO")
	}
	if clip.content != "HELLO" {
		t.Errorf("clipboard = %q, want %q", clip.content, "HELLO")
	}
}

func TestExecutePreviewNeverApplies(t *testing.T) {
	var replaced bool
	surface := &fakeSurface{}
	ring := history.NewRing(10)
	ex := execute.New(execute.Config{
		Settings: newStore(t),
		History:  ring,
		Surface:  surface,
		Replace:  func(string) error { replaced = true; return nil },
	})

	for _, output := range []rule.OutputMode{rule.OutputReplace, rule.OutputPopup} {
		ru := rule.Rule{
			ID:          "r1",
			Action:      mustAction(t, "to-upper-case"),
			Output:      output,
			Preview:     true,
			SaveHistory: true,
		}
		res := ex.Execute(context.Background(), ru, execute.Env{Selection: "abc"})
		if res.Text != "ABC" {
			t.Errorf("output %v: Text = %q, want %q", output, res.Text, "ABC")
		}
	}

	if replaced {
		t.Error("preview applied replacement")
	}
	if surface.popupCount() != 0 {
		t.Error("preview showed a popup")
	}
	if ring.Len() != 2 {
		t.Errorf("history len = %d, want 2", ring.Len())
	}
}

func TestExecuteErrorNeverReplaces(t *testing.T) {
	var replaced bool
	surface := &fakeSurface{}
	store := newStore(t)
	if _, err := store.SetScriptAction("bad", settings.ScriptDefinition{
		Name:     "bad",
		Language: settings.ScriptLua,
		Code:     `function process(data) error("boom") end`,
	}); err != nil {
		t.Fatal(err)
	}
	ex := execute.New(execute.Config{
		Settings: store,
		Surface:  surface,
		Replace:  func(string) error { replaced = true; return nil },
	})

	ru := rule.Rule{
		ID:     "r1",
		Action: action.Script("bad"),
		Output: rule.OutputReplace,
	}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "x"})

	if !res.IsError {
		t.Fatalf("Execute() = %+v, want error result", res)
	}
	if !strings.Contains(res.Text, "boom") {
		t.Errorf("Text = %q, want script error text", res.Text)
	}
	if replaced {
		t.Error("error result was applied as replacement")
	}
	if surface.popupCount() != 1 {
		t.Errorf("popups = %d, want 1", surface.popupCount())
	}
}

func TestExecuteScriptLua(t *testing.T) {
	store := newStore(t)
	if _, err := store.SetScriptAction("shout", settings.ScriptDefinition{
		Name:     "shout",
		Language: settings.ScriptLua,
		Code:     `function process(data) return string.upper(data.selection) .. "!" end`,
	}); err != nil {
		t.Fatal(err)
	}
	ex := execute.New(execute.Config{Settings: store})

	ru := rule.Rule{ID: "r1", Action: action.Script("shout"), Output: rule.OutputNone}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "hey"})

	if res.IsError {
		t.Fatalf("Execute() error result: %s", res.Text)
	}
	if res.Text != "HEY!" {
		t.Errorf("Text = %q, want %q", res.Text, "HEY!")
	}
}

func TestExecuteSearcher(t *testing.T) {
	store := newStore(t)
	if _, err := store.SetSearcherAction("ddg", settings.SearcherDefinition{
		Name: "DuckDuckGo",
		URL:  "https://duckduckgo.com/?q={{selection}}",
	}); err != nil {
		t.Fatal(err)
	}
	opener := &fakeOpener{}
	ex := execute.New(execute.Config{Settings: store, Opener: opener})

	ru := rule.Rule{ID: "r1", Action: action.Searcher("ddg")}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "  hello world  "})

	if res.HasText {
		t.Errorf("Execute() = %+v, want no text result", res)
	}
	want := "https://duckduckgo.com/?q=hello+world"
	if len(opener.urls) != 1 || opener.urls[0] != want {
		t.Errorf("opened %v, want [%s]", opener.urls, want)
	}
}

func TestExecuteOpenURLsPerLine(t *testing.T) {
	opener := &fakeOpener{}
	ex := execute.New(execute.Config{Settings: newStore(t), Opener: opener})

	ru := rule.Rule{ID: "r1", Action: mustAction(t, "open-urls")}
	sel := "https://a.example\n\n  https://b.example  \n"
	ex.Execute(context.Background(), ru, execute.Env{Selection: sel})

	if len(opener.urls) != 2 {
		t.Fatalf("opened %d urls, want 2", len(opener.urls))
	}
	if opener.urls[0] != "https://a.example" || opener.urls[1] != "https://b.example" {
		t.Errorf("opened %v", opener.urls)
	}
}

func TestExecuteNoneShowsMain(t *testing.T) {
	surface := &fakeSurface{}
	ex := execute.New(execute.Config{Settings: newStore(t), Surface: surface})

	ex.Execute(context.Background(), rule.Rule{ID: "r1"}, execute.Env{})

	if surface.mainShown != 1 {
		t.Errorf("mainShown = %d, want 1", surface.mainShown)
	}
}

func TestExecutePromptStreams(t *testing.T) {
	store := newStore(t)
	if _, err := store.SetPromptAction("sum", settings.PromptDefinition{
		Name:     "Summarize",
		Provider: "fake",
		Model:    "fake-1",
		Template: "Summarize: {{selection}}",
	}); err != nil {
		t.Fatal(err)
	}
	surface := &fakeSurface{}
	ring := history.NewRing(10)
	prov := &fakeProvider{chunks: []string{"short ", "summary"}}
	ex := execute.New(execute.Config{
		Settings:  store,
		History:   ring,
		Surface:   surface,
		Providers: map[string]provider.Provider{"fake": prov},
	})

	ru := rule.Rule{ID: "r1", Action: action.Prompt("sum"), SaveHistory: true}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "long text"})

	if res.IsError {
		t.Fatalf("Execute() error result: %s", res.Text)
	}
	if res.Abort == nil {
		t.Error("Abort = nil, want abort handle")
	}
	if surface.popupCount() != 1 {
		t.Errorf("popups = %d, want 1", surface.popupCount())
	}

	waitFor(t, func() bool { return surface.streamed() == "short summary" })
	waitFor(t, func() bool {
		entries := ring.Entries()
		return len(entries) == 1 && entries[0].Response == "short summary"
	})
}

func TestExecutePromptPreviewRendersOnly(t *testing.T) {
	store := newStore(t)
	if _, err := store.SetPromptAction("sum", settings.PromptDefinition{
		Name:     "Summarize",
		Provider: "fake",
		Model:    "fake-1",
		Template: "Summarize: {{selection}}",
	}); err != nil {
		t.Fatal(err)
	}
	prov := &fakeProvider{chunks: []string{"never"}}
	ex := execute.New(execute.Config{
		Settings:  store,
		Providers: map[string]provider.Provider{"fake": prov},
	})

	ru := rule.Rule{ID: "r1", Action: action.Prompt("sum"), Preview: true}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "long text"})

	if res.Text != "Summarize: long text" {
		t.Errorf("Text = %q, want rendered template", res.Text)
	}
	if prov.calls != 0 {
		t.Errorf("provider calls = %d, want 0", prov.calls)
	}
}

func TestExecutePromptCacheHit(t *testing.T) {
	store := newStore(t)
	if _, err := store.SetPromptAction("sum", settings.PromptDefinition{
		Name:     "Summarize",
		Provider: "fake",
		Model:    "fake-1",
		Template: "Summarize: {{selection}}",
	}); err != nil {
		t.Fatal(err)
	}
	persist, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer persist.Close()
	if err := persist.CacheSet("Summarize: long text", "cached answer"); err != nil {
		t.Fatal(err)
	}

	prov := &fakeProvider{err: errors.New("should not be called")}
	surface := &fakeSurface{}
	ex := execute.New(execute.Config{
		Settings:  store,
		Persist:   persist,
		Surface:   surface,
		Providers: map[string]provider.Provider{"fake": prov},
	})

	ru := rule.Rule{ID: "r1", Action: action.Prompt("sum")}
	res := ex.Execute(context.Background(), ru, execute.Env{Selection: "long text"})

	if res.IsError {
		t.Fatalf("Execute() error result: %s", res.Text)
	}
	if res.Text != "cached answer" {
		t.Errorf("Text = %q, want cached response", res.Text)
	}
	if prov.calls != 0 {
		t.Errorf("provider calls = %d, want 0", prov.calls)
	}
	if surface.popupCount() != 1 {
		t.Errorf("popups = %d, want 1", surface.popupCount())
	}
}

func TestExecuteEntryLabels(t *testing.T) {
	ex := execute.New(execute.Config{Settings: newStore(t)})

	ru := rule.Rule{
		ID:     "r1",
		Case:   textcase.Natural("en"),
		Action: mustAction(t, "to-upper-case"),
		Output: rule.OutputNone,
	}
	res := ex.Execute(context.Background(), ru, execute.Env{
		Shortcut:  "Ctrl+Shift+C",
		Selection: "hi",
	})

	if res.Entry == nil {
		t.Fatal("Entry = nil")
	}
	if res.Entry.CaseLabel != "English" {
		t.Errorf("CaseLabel = %q, want %q", res.Entry.CaseLabel, "English")
	}
	if res.Entry.ActionType != "builtin" {
		t.Errorf("ActionType = %q, want %q", res.Entry.ActionType, "builtin")
	}
	if res.Entry.Shortcut != "Ctrl+Shift+C" {
		t.Errorf("Shortcut = %q", res.Entry.Shortcut)
	}
}

func TestRender(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	env := execute.Env{
		Clipboard: "clip",
		Selection: "sel",
		Datetime:  at,
	}
	got := execute.Render("c={{clipboard}} s={{selection}} t={{datetime}}", env)
	want := "c=clip s=sel t=" + at.Format(time.RFC3339)
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func mustAction(t *testing.T, id string) action.Action {
	t.Helper()
	a, err := action.Parse(id)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", id, err)
	}
	return a
}
