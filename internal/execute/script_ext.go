package execute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const externalTimeout = 30 * time.Second

// runExternal executes wrapped script source with an external
// interpreter. The wrapper feeds the data object on stdin as JSON and
// prints the process(data) result on stdout. Non-empty stderr or a
// non-zero exit becomes the error.
func runExternal(ctx context.Context, interpreter, source string, env Env) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, externalTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"shortcut":  env.Shortcut,
		"clipboard": env.Clipboard,
		"selection": env.Selection,
		"datetime":  env.Datetime.Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}

	var cmd *exec.Cmd
	switch interpreter {
	case "node":
		cmd = exec.CommandContext(ctx, interpreter, "-e", source)
	default:
		cmd = exec.CommandContext(ctx, interpreter, "-c", source)
	}
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Env = augmentPath(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %s", interpreter, msg)
		}
		return "", fmt.Errorf("%s: %w", interpreter, err)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return "", fmt.Errorf("%s: %s", interpreter, msg)
	}
	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// augmentPath appends the common interpreter install locations that
// launchd and desktop sessions leave off PATH.
func augmentPath(environ []string) []string {
	extra := []string{
		"/usr/local/bin",
		"/opt/homebrew/bin",
		"/usr/local/opt/node/bin",
	}
	for i, kv := range environ {
		if !strings.HasPrefix(kv, "PATH=") {
			continue
		}
		path := strings.TrimPrefix(kv, "PATH=")
		for _, dir := range extra {
			if !strings.Contains(path, dir) {
				path += string(os.PathListSeparator) + dir
			}
		}
		environ[i] = "PATH=" + path
		return environ
	}
	return append(environ, "PATH="+strings.Join(extra, string(os.PathListSeparator)))
}

// jsWrapper embeds user JavaScript defining process(data) and invokes
// it with the JSON payload read from stdin.
func jsWrapper(code string) string {
	return code + `
const _fs = require("fs");
const _data = JSON.parse(_fs.readFileSync(0, "utf8"));
_fs.writeSync(1, String(process(_data)));
`
}

// pyWrapper embeds user Python defining process(data) and invokes it
// with the JSON payload read from stdin.
func pyWrapper(code string) string {
	return code + `

import json as _json
import sys as _sys

_data = _json.load(_sys.stdin)
_sys.stdout.write(str(process(_data)))
`
}
