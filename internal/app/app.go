// Package app assembles the engine: settings, history, recognition,
// execution and the shortcut service, fed by a trigger event stream.
package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/classifier"
	"github.com/dshills/selact/internal/execute"
	"github.com/dshills/selact/internal/execute/provider"
	"github.com/dshills/selact/internal/history"
	"github.com/dshills/selact/internal/logging"
	"github.com/dshills/selact/internal/recognize"
	"github.com/dshills/selact/internal/recognize/codeid"
	"github.com/dshills/selact/internal/recognize/langid"
	"github.com/dshills/selact/internal/settings"
	"github.com/dshills/selact/internal/shortcut"
	"github.com/dshills/selact/internal/textcase"
)

// ErrQuit signals a clean shutdown requested through the event stream.
var ErrQuit = errors.New("app: quit")

// Options configure App construction.
type Options struct {
	// ConfigPath locates the TOML config file; empty uses defaults.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Debug switches the logger to development output.
	Debug bool

	// In is the trigger event stream; defaults to stdin.
	In io.Reader

	// Out is the surface event stream; defaults to stdout.
	Out io.Writer
}

// App owns every engine component and their shutdown order.
type App struct {
	log     *zap.Logger
	store   *settings.Store
	watcher *settings.Watcher
	persist *history.Store
	ring    *history.Ring
	service *shortcut.Service

	in  io.Reader
	out io.Writer

	shutdownOnce sync.Once
}

// New builds a fully wired App from options.
func New(opts Options) (*App, error) {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	log, err := logging.New(cfg.LogLevel, opts.Debug)
	if err != nil {
		return nil, err
	}

	store := settings.New(cfg.SettingsPath)
	if err := store.Load(); err != nil {
		return nil, err
	}

	persist, err := history.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	max := cfg.HistoryMax
	if hm := store.HistoryMax(); hm > 0 {
		max = hm
	}
	if max <= 0 {
		max = history.DefaultMax
	}
	ring := history.NewRing(max)
	if entries, err := persist.Recent(max); err != nil {
		log.Warn("history preload failed", zap.Error(err))
	} else {
		for i := len(entries) - 1; i >= 0; i-- {
			ring.Append(entries[i])
		}
	}

	recognizer := recognize.New(recognize.Config{
		Natural: recognize.NaturalFrom(langid.New(textcase.NaturalLanguageCodes())),
		Program: recognize.ProgramFrom(codeid.New()),
		Custom:  store,
		Models:  classifier.NewMemory(),
		Log:     log,
	})

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	surface := newStreamSurface(out, log)

	executor := execute.New(execute.Config{
		Settings:  store,
		History:   ring,
		Persist:   persist,
		Surface:   surface,
		Clipboard: execute.SystemClipboard{},
		Opener:    execute.SystemOpener{},
		Providers: providers(store),
		Log:       log,
	})

	service := shortcut.NewService(shortcut.ServiceConfig{
		Recognizer: recognizer,
		Executor:   executor,
		Settings:   store,
		Clipboard:  execute.SystemClipboard{},
		Toolbar:    surface,
		Log:        log,
	})
	service.Reload()

	watcher, err := settings.Watch(store, log)
	if err != nil {
		log.Warn("settings watch unavailable", zap.Error(err))
		watcher = nil
	} else {
		watcher.OnReload(service.Reload)
	}

	return &App{
		log:     log,
		store:   store,
		watcher: watcher,
		persist: persist,
		ring:    ring,
		service: service,
		in:      in,
		out:     out,
	}, nil
}

// providers builds the streaming AI backends that have API keys
// configured.
func providers(store *settings.Store) map[string]provider.Provider {
	out := make(map[string]provider.Provider)
	if key := store.ProviderKey("anthropic"); key != "" {
		out["anthropic"] = provider.NewAnthropic(key)
	}
	if key := store.ProviderKey("openai"); key != "" {
		out["openai"] = provider.NewOpenAI(key)
	}
	return out
}

// command is one inbound control or trigger message.
type command struct {
	// Cmd selects a control verb: pause, resume, quit. Empty means a
	// trigger event.
	Cmd string `json:"cmd,omitempty"`

	shortcut.Event
}

// Run consumes newline-delimited JSON trigger events until the stream
// closes or a quit command arrives. Malformed lines are logged and
// skipped.
func (a *App) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var cmd command
		if err := json.Unmarshal(line, &cmd); err != nil {
			a.log.Warn("malformed event", zap.Error(err))
			continue
		}

		switch cmd.Cmd {
		case "":
			a.service.Dispatch(ctx, cmd.Event)
		case "pause":
			a.service.Pause()
		case "resume":
			a.service.Resume()
		case "quit":
			return ErrQuit
		default:
			a.log.Warn("unknown command", zap.String("cmd", cmd.Cmd))
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("app: event stream: %w", err)
	}
	return nil
}

// Shutdown releases all resources. Safe to call more than once and on
// all exit paths.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		a.service.Close()
		if err := a.persist.Close(); err != nil {
			a.log.Warn("history close failed", zap.Error(err))
		}
		_ = a.log.Sync()
	})
}
