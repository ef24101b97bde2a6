package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/app"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/settings"
	"github.com/dshills/selact/internal/textcase"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := "settings_path = " + strconv.Quote(filepath.Join(dir, "settings.json")) + "\n" +
		"data_dir = " + strconv.Quote(filepath.Join(dir, "data")) + "\n" +
		"log_level = \"error\"\n"
	path := filepath.Join(dir, "selact.toml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func seedShortcut(t *testing.T, cfgPath string) {
	t.Helper()
	settingsPath := filepath.Join(filepath.Dir(cfgPath), "settings.json")
	store := settings.New(settingsPath)
	a, err := action.Parse("to-upper-case")
	if err != nil {
		t.Fatal(err)
	}
	err = store.SetShortcuts([]settings.StoredShortcut{{
		Trigger: "Ctrl+Shift+C",
		Mode:    "quiet",
		Rules: []rule.Rule{{
			ID:     "r1",
			Case:   textcase.Skip(),
			Action: a,
			Output: rule.OutputPopup,
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}
}

func TestAppDispatchEndToEnd(t *testing.T) {
	cfgPath := writeConfig(t)
	seedShortcut(t, cfgPath)

	input := strings.Join([]string{
		`{"shortcut":"Ctrl+Shift+C","selection":"hello"}`,
		`{"cmd":"quit"}`,
	}, "\n") + "\n"
	var out bytes.Buffer

	a, err := app.New(app.Options{
		ConfigPath: cfgPath,
		In:         strings.NewReader(input),
		Out:        &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Shutdown()

	if err := a.Run(context.Background()); !errors.Is(err, app.ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}

	var saw bool
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var ev struct {
			Event string `json:"event"`
			Entry *struct {
				Result string `json:"result"`
			} `json:"entry"`
		}
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad surface line %q: %v", line, err)
		}
		if ev.Event == "showPopup" && ev.Entry != nil && ev.Entry.Result == "HELLO" {
			saw = true
		}
	}
	if !saw {
		t.Errorf("no showPopup with result HELLO in output:\n%s", out.String())
	}
}

func TestAppPauseCommand(t *testing.T) {
	cfgPath := writeConfig(t)
	seedShortcut(t, cfgPath)

	input := strings.Join([]string{
		`{"cmd":"pause"}`,
		`{"shortcut":"Ctrl+Shift+C","selection":"hello"}`,
		`{"cmd":"quit"}`,
	}, "\n") + "\n"
	var out bytes.Buffer

	a, err := app.New(app.Options{
		ConfigPath: cfgPath,
		In:         strings.NewReader(input),
		Out:        &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Shutdown()

	if err := a.Run(context.Background()); !errors.Is(err, app.ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	if strings.Contains(out.String(), "showPopup") {
		t.Errorf("paused app dispatched:\n%s", out.String())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SettingsPath == "" || cfg.DataDir == "" {
		t.Errorf("LoadConfig(\"\") = %+v, want populated defaults", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}
