package action_test

import (
	"errors"
	"testing"

	"github.com/dshills/selact/internal/action"
)

func TestParseVariants(t *testing.T) {
	tests := []struct {
		id   string
		kind action.Kind
	}{
		{"", action.KindNone},
		{"copy", action.KindBuiltin},
		{"to-snake-case", action.KindBuiltin},
		{"script-9a1f", action.KindScript},
		{"prompt-22bc", action.KindPrompt},
		{"searcher-d3e0", action.KindSearcher},
	}

	for _, tt := range tests {
		a, err := action.Parse(tt.id)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.id, err)
			continue
		}
		if a.Kind() != tt.kind {
			t.Errorf("Parse(%q): kind = %v, want %v", tt.id, a.Kind(), tt.kind)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := action.Parse("no-such-builtin")
	if !errors.Is(err, action.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestNoResult(t *testing.T) {
	tests := []struct {
		a    action.Action
		want bool
	}{
		{action.None(), true},
		{action.Builtin(action.BuiltinCopy), true},
		{action.Builtin(action.BuiltinOpenURLs), true},
		{action.Builtin("to-snake-case"), false},
		{action.Script("x"), false},
		{action.Prompt("x"), false},
		{action.Searcher("x"), true},
	}

	for _, tt := range tests {
		if got := tt.a.NoResult(); got != tt.want {
			t.Errorf("%s.NoResult() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestActionComparable(t *testing.T) {
	seen := map[action.Action]int{}
	seen[action.Builtin("copy")]++
	seen[action.Builtin("copy")]++
	seen[action.Script("x")]++

	if seen[action.Builtin("copy")] != 2 {
		t.Error("expected identical actions to share a map key")
	}
	if len(seen) != 2 {
		t.Errorf("expected 2 distinct keys, got %d", len(seen))
	}
}

func TestConverters(t *testing.T) {
	tests := []struct {
		id   string
		in   string
		want string
	}{
		{"to-camel-case", "match_all_rules", "matchAllRules"},
		{"to-camel-case", "handleHTTPError", "handleHttpError"},
		{"to-pascal-case", "match-all-rules", "MatchAllRules"},
		{"to-snake-case", "matchAllRules", "match_all_rules"},
		{"to-snake-case", "handleHTTPError", "handle_http_error"},
		{"to-screaming-snake-case", "matchAllRules", "MATCH_ALL_RULES"},
		{"to-kebab-case", "MatchAllRules", "match-all-rules"},
		{"to-train-case", "match_all_rules", "Match-All-Rules"},
		{"to-dot-case", "MatchAllRules", "match.all.rules"},
		{"to-title-case", "match_all_rules", "Match All Rules"},
	}

	for _, tt := range tests {
		spec, ok := action.Lookup(tt.id)
		if !ok {
			t.Fatalf("no builtin %q", tt.id)
		}
		got, err := spec.Transform(tt.in)
		if err != nil {
			t.Fatalf("%s(%q): %v", tt.id, tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.id, tt.in, got, tt.want)
		}
	}
}

func TestProcessors(t *testing.T) {
	tests := []struct {
		id   string
		in   string
		want string
	}{
		{"trim", "  hello  ", "hello"},
		{"trim-lines", " a \n b ", "a\nb"},
		{"collapse-whitespace", "a \t b\n c", "a b c"},
		{"reverse-lines", "a\nb\nc", "c\nb\na"},
		{"sort-lines", "c\na\nb", "a\nb\nc"},
		{"dedupe-lines", "a\nb\na", "a\nb"},
		{"base64-encode", "hi", "aGk="},
		{"base64-decode", "aGk=", "hi"},
		{"url-encode", "a b&c", "a+b%26c"},
		{"url-decode", "a+b%26c", "a b&c"},
		{"json-escape", "a\"b\nc", `a\"b\nc`},
		{"json-unescape", `a\"b\nc`, "a\"b\nc"},
		{"json-minify", "{\n  \"a\": 1\n}", `{"a":1}`},
	}

	for _, tt := range tests {
		spec, ok := action.Lookup(tt.id)
		if !ok {
			t.Fatalf("no builtin %q", tt.id)
		}
		got, err := spec.Transform(tt.in)
		if err != nil {
			t.Fatalf("%s(%q): %v", tt.id, tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.id, tt.in, got, tt.want)
		}
	}
}

func TestProcessorErrorsAreErrors(t *testing.T) {
	for _, id := range []string{"base64-decode", "url-decode", "json-pretty", "json-minify"} {
		spec, _ := action.Lookup(id)
		if _, err := spec.Transform("!!! not valid %%%"); err == nil {
			t.Errorf("%s: expected error for malformed input", id)
		}
	}
}
