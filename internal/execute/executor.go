package execute

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/execute/provider"
	"github.com/dshills/selact/internal/history"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/settings"
	"github.com/dshills/selact/internal/textcase"
)

// Surface is the UI collaborator: it renders the main window, popups
// and streamed response updates. Implementations live outside the
// engine; payloads are history entries serialized as JSON.
type Surface interface {
	// ShowMain opens the main configuration surface.
	ShowMain()

	// ShowPopup shows an entry in a result popup.
	ShowPopup(entry history.Entry)

	// AppendResponse streams one response chunk into an already-shown
	// popup.
	AppendResponse(entryID, chunk string)
}

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Opener opens URLs and filesystem paths with the OS.
type Opener interface {
	// OpenURL opens a URL, optionally in a specific browser.
	OpenURL(rawURL, browser string) error

	// OpenPath reveals a filesystem path.
	OpenPath(path string) error
}

// Env is the captured context one dispatch operates on.
type Env struct {
	// Shortcut is the normalized trigger that fired.
	Shortcut string

	// Clipboard is the clipboard snapshot at dispatch time.
	Clipboard string

	// Selection is the captured text.
	Selection string

	// Datetime is the dispatch time; the zero value means now.
	Datetime time.Time
}

// Result is the outcome of one executed rule.
type Result struct {
	// Text is the textual result, valid when HasText is set.
	Text    string
	HasText bool

	// IsError marks Text as an error message; error results are never
	// applied as real output.
	IsError bool

	// Entry is the history record built for this dispatch.
	Entry *history.Entry

	// Abort stops an in-flight streamed response. Nil for
	// non-streaming actions.
	Abort func()
}

// Config carries the Executor's collaborators. Surface, Clipboard,
// Opener, Replace and Persist may be nil; the corresponding side
// effects become no-ops.
type Config struct {
	Settings  *settings.Store
	History   *history.Ring
	Persist   *history.Store
	Surface   Surface
	Clipboard Clipboard
	Opener    Opener

	// Replace substitutes text for the current selection via the OS
	// input layer.
	Replace func(text string) error

	// Providers maps provider names to streaming AI backends.
	Providers map[string]provider.Provider

	Log *zap.Logger
}

// Executor runs matched rules.
type Executor struct {
	settings  *settings.Store
	ring      *history.Ring
	persist   *history.Store
	surface   Surface
	clipboard Clipboard
	opener    Opener
	replace   func(string) error
	providers map[string]provider.Provider
	log       *zap.Logger
}

// New creates an Executor.
func New(cfg Config) *Executor {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		settings:  cfg.Settings,
		ring:      cfg.History,
		persist:   cfg.Persist,
		surface:   cfg.Surface,
		clipboard: cfg.Clipboard,
		opener:    cfg.Opener,
		replace:   cfg.Replace,
		providers: cfg.Providers,
		log:       log,
	}
}

// Execute performs the rule's action on the captured selection. It
// never fails the dispatch pipeline: collaborator errors come back as
// error-flagged results.
func (e *Executor) Execute(ctx context.Context, ru rule.Rule, env Env) Result {
	ru = ru.Normalize()
	if env.Datetime.IsZero() {
		env.Datetime = time.Now()
	}

	switch ru.Action.Kind() {
	case action.KindNone:
		if e.surface != nil {
			e.surface.ShowMain()
		}
		return e.route(ru, env, Result{})

	case action.KindScript:
		return e.route(ru, env, e.execScript(ctx, ru, env))

	case action.KindPrompt:
		// Prompt routing is stream-aware and handled in execPrompt.
		return e.execPrompt(ctx, ru, env)

	case action.KindSearcher:
		return e.route(ru, env, e.execSearcher(ru, env))

	default:
		return e.route(ru, env, e.execBuiltin(ru, env))
	}
}

// route applies the cross-cutting result handling: preview
// short-circuit, output-mode routing and history bookkeeping.
func (e *Executor) route(ru rule.Rule, env Env, res Result) Result {
	entry := e.newEntry(ru, env)
	entry.Result = res.Text
	entry.IsError = res.IsError
	res.Entry = &entry

	if ru.Preview {
		if ru.SaveHistory {
			e.record(entry)
		}
		return res
	}

	switch {
	case res.HasText && !res.IsError:
		switch ru.Output {
		case rule.OutputReplace:
			if e.replace != nil {
				if err := e.replace(res.Text); err != nil {
					e.log.Warn("selection replace failed", zap.Error(err))
				}
			}
			if ru.CopyToClipboard && e.clipboard != nil {
				if err := e.clipboard.Write(res.Text); err != nil {
					e.log.Warn("clipboard write failed", zap.Error(err))
				}
			}
		case rule.OutputPopup:
			if e.surface != nil {
				e.surface.ShowPopup(entry)
			}
		}

	case res.IsError:
		// Surfaced, never applied.
		if ru.Output != rule.OutputNone && e.surface != nil {
			e.surface.ShowPopup(entry)
		}
	}

	if ru.SaveHistory {
		e.record(entry)
	}
	return res
}

func (e *Executor) execSearcher(ru rule.Rule, env Env) Result {
	def, ok := e.settings.SearcherDef(ru.Action.ID())
	if !ok {
		return errorResult("searcher definition not found: " + ru.Action.ID())
	}

	target := strings.ReplaceAll(def.URL, "{{selection}}",
		url.QueryEscape(strings.TrimSpace(env.Selection)))
	if e.opener != nil {
		if err := e.opener.OpenURL(target, def.Browser); err != nil {
			e.log.Warn("searcher open failed",
				zap.String("url", target),
				zap.Error(err))
		}
	}
	return Result{}
}

func (e *Executor) execBuiltin(ru rule.Rule, env Env) Result {
	spec, ok := action.Lookup(ru.Action.ID())
	if !ok {
		return errorResult("unknown builtin action: " + ru.Action.ID())
	}

	switch spec.ID {
	case action.BuiltinCopy:
		if e.clipboard != nil {
			if err := e.clipboard.Write(env.Selection); err != nil {
				e.log.Warn("clipboard write failed", zap.Error(err))
			}
		}
		return Result{}

	case action.BuiltinOpenURLs:
		e.openLines(env.Selection, func(line string) error {
			return e.opener.OpenURL(line, "")
		})
		return Result{}

	case action.BuiltinOpenPaths:
		e.openLines(env.Selection, func(line string) error {
			return e.opener.OpenPath(line)
		})
		return Result{}
	}

	out, err := spec.Transform(env.Selection)
	if err != nil {
		return errorResult(err.Error())
	}
	return Result{Text: out, HasText: true}
}

func (e *Executor) openLines(selection string, open func(string) error) {
	if e.opener == nil {
		return
	}
	for _, line := range strings.Split(selection, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := open(line); err != nil {
			e.log.Warn("open failed", zap.String("target", line), zap.Error(err))
		}
	}
}

func (e *Executor) newEntry(ru rule.Rule, env Env) history.Entry {
	entry := history.NewEntry(env.Shortcut, env.Clipboard, env.Selection)
	entry.Datetime = env.Datetime
	entry.CaseLabel = e.caseLabel(ru.Case)
	entry.ActionType = ru.Action.Kind().String()
	entry.ActionLabel = e.actionLabel(ru.Action)
	return entry
}

func (e *Executor) caseLabel(c textcase.Case) string {
	switch c.Kind() {
	case textcase.KindSkip:
		return ""
	case textcase.KindNatural, textcase.KindProgramming:
		return textcase.LanguageName(c.ID())
	case textcase.KindCustomRegex, textcase.KindCustomModel:
		return e.settings.CaseName(c.ID())
	default:
		return c.ID()
	}
}

func (e *Executor) actionLabel(a action.Action) string {
	if a.IsNone() {
		return ""
	}
	switch a.Kind() {
	case action.KindScript, action.KindPrompt, action.KindSearcher:
		return e.settings.ActionName(a.ID())
	default:
		return action.Label(a)
	}
}

// record appends the entry to the in-memory ring and, when persistence
// is configured, to the database.
func (e *Executor) record(entry history.Entry) {
	if e.ring != nil {
		e.ring.Append(entry)
	}
	if e.persist != nil {
		max := 0
		if e.settings != nil {
			max = e.settings.HistoryMax()
		}
		if max <= 0 && e.ring != nil {
			max = e.ring.Max()
		}
		if err := e.persist.Append(entry, max); err != nil {
			e.log.Warn("history persist failed", zap.Error(err))
		}
	}
}

func errorResult(msg string) Result {
	return Result{Text: msg, HasText: true, IsError: true}
}
