package shortcut

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/execute"
	"github.com/dshills/selact/internal/recognize"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/settings"
)

// Event is one trigger firing from the OS input layer. Shortcut is the
// canonical trigger string; App and PageURL identify the frontmost
// application for blacklist filtering and may be empty.
type Event struct {
	Shortcut  string `json:"shortcut"`
	Selection string `json:"selection"`
	App       string `json:"app,omitempty"`
	PageURL   string `json:"url,omitempty"`
}

// ToolbarSurface receives the matched-rule payload in toolbar mode.
type ToolbarSurface interface {
	ShowToolbar(payload []byte)
}

// ServiceConfig carries the Service's collaborators.
type ServiceConfig struct {
	Backend    Backend
	Recognizer *recognize.Recognizer
	Executor   *execute.Executor
	Settings   *settings.Store
	Clipboard  execute.Clipboard
	Toolbar    ToolbarSurface
	Log        *zap.Logger
}

// Service owns the registry and runs the dispatch pipeline. Construct
// with NewService, load persisted shortcuts with Reload, and Close when
// done; there is no implicit lifecycle.
type Service struct {
	registry   *Registry
	recognizer *recognize.Recognizer
	executor   *execute.Executor
	settings   *settings.Store
	clipboard  execute.Clipboard
	toolbar    ToolbarSurface
	blacklist  *Blacklist
	log        *zap.Logger

	mu     sync.Mutex
	paused bool

	closeOnce sync.Once
}

// NewService creates a Service. Call Reload to pick up persisted
// shortcuts.
func NewService(cfg ServiceConfig) *Service {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		registry:   NewRegistry(cfg.Backend),
		recognizer: cfg.Recognizer,
		executor:   cfg.Executor,
		settings:   cfg.Settings,
		clipboard:  cfg.Clipboard,
		toolbar:    cfg.Toolbar,
		blacklist:  NewBlacklist(nil),
		log:        log,
	}
}

// Registry exposes the underlying registry for configuration paths.
func (s *Service) Registry() *Registry { return s.registry }

// Reload rebuilds the registry and blacklist from settings. Stored
// shortcuts that no longer parse are skipped with a warning.
func (s *Service) Reload() {
	s.registry.Reset()
	if s.settings == nil {
		return
	}

	s.blacklist.Set(s.settings.Blacklist())

	for _, sc := range s.settings.Shortcuts() {
		t, err := ParseTrigger(sc.Trigger)
		if err != nil {
			s.log.Warn("skipping stored shortcut",
				zap.String("trigger", sc.Trigger),
				zap.Error(err))
			continue
		}
		mode := ParseMode(sc.Mode)
		for _, ru := range sc.Rules {
			if err := s.registry.Register(t, mode, ru); err != nil {
				s.log.Warn("skipping stored rule",
					zap.String("trigger", sc.Trigger),
					zap.String("rule", ru.ID),
					zap.Error(err))
			}
		}
	}
}

// Pause suppresses dispatch and releases every keyboard binding so
// the combinations reach their normal targets again. Returns false
// when already paused.
func (s *Service) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return false
	}
	s.paused = true
	s.registry.Suspend()
	return true
}

// Resume re-binds the keyboard triggers and re-enables dispatch.
// Returns false when not paused.
func (s *Service) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.paused {
		return false
	}
	s.paused = false
	s.registry.Restore()
	return true
}

// Paused reports the pause state.
func (s *Service) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Dispatch handles one trigger event end to end. A trigger with no
// rules, a blacklisted context or no matching rule is a silent no-op.
func (s *Service) Dispatch(ctx context.Context, ev Event) {
	if s.Paused() {
		return
	}

	t, err := ParseTrigger(ev.Shortcut)
	if err != nil {
		s.log.Debug("unparseable trigger", zap.String("shortcut", ev.Shortcut))
		return
	}

	mode, rules, ok := s.registry.Lookup(t.String())
	if !ok || len(rules) == 0 {
		s.log.Debug("no rules for trigger", zap.String("trigger", t.String()))
		return
	}

	if s.blacklist.Blocked(ev.App, ev.PageURL) {
		s.log.Debug("dispatch suppressed by blacklist",
			zap.String("app", ev.App),
			zap.String("url", ev.PageURL))
		return
	}

	env := s.newEnv(t.String(), ev.Selection)

	switch mode {
	case ModeToolbar:
		matched := s.recognizer.MatchAll(ctx, ev.Selection, rules)
		if len(matched) == 0 {
			return
		}
		s.showToolbar(matched, ev.Selection)

	default:
		ru, ok := s.recognizer.MatchOne(ctx, ev.Selection, rules)
		if !ok {
			return
		}
		s.executor.Execute(ctx, ru, env)
	}
}

// ExecuteRule runs one rule for the given selection. The toolbar calls
// this once the user picks a match.
func (s *Service) ExecuteRule(ctx context.Context, ru rule.Rule, selection string) execute.Result {
	return s.executor.Execute(ctx, ru, s.newEnv(ru.Shortcut, selection))
}

// Close releases every bound trigger. Safe to call more than once.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.registry.Reset()
	})
}

func (s *Service) newEnv(shortcut, selection string) execute.Env {
	env := execute.Env{Shortcut: shortcut, Selection: selection}
	if s.clipboard != nil {
		if clip, err := s.clipboard.Read(); err == nil {
			env.Clipboard = clip
		}
	}
	return env
}

// toolbarRule is the wire form of one matched rule.
type toolbarRule struct {
	ID      string `json:"id"`
	Case    string `json:"case"`
	Action  string `json:"action"`
	Display string `json:"display"`
	Output  string `json:"output"`
	Preview bool   `json:"preview"`
}

func (s *Service) showToolbar(matched []rule.Rule, selection string) {
	if s.toolbar == nil {
		return
	}

	rules := make([]toolbarRule, 0, len(matched))
	for _, ru := range matched {
		rules = append(rules, toolbarRule{
			ID:      ru.ID,
			Case:    ru.Case.ID(),
			Action:  ru.Action.ID(),
			Display: ru.Display.String(),
			Output:  ru.Output.String(),
			Preview: ru.Preview,
		})
	}
	payload, err := json.Marshal(struct {
		Rules     []toolbarRule `json:"rules"`
		Selection string        `json:"selection"`
	}{Rules: rules, Selection: selection})
	if err != nil {
		s.log.Warn("toolbar payload failed", zap.Error(err))
		return
	}
	s.toolbar.ShowToolbar(payload)
}
