package action

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func countWords(s string) string {
	words := len(strings.Fields(s))
	chars := len([]rune(s))
	lines := strings.Count(s, "\n") + 1
	if s == "" {
		lines = 0
	}
	return fmt.Sprintf("%d words, %d characters, %d lines", words, chars, lines)
}

func reverseLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

func sortLines(s string) string {
	lines := strings.Split(s, "\n")
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func dedupeLines(s string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func base64Decode(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("action: base64 decode: %w", err)
	}
	return string(b), nil
}

func urlEncode(s string) string {
	return url.QueryEscape(s)
}

func urlDecode(s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("action: url decode: %w", err)
	}
	return out, nil
}

func jsonEscape(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("action: json escape: %w", err)
	}
	return string(b[1 : len(b)-1]), nil
}

func jsonUnescape(s string) (string, error) {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return "", fmt.Errorf("action: json unescape: %w", err)
	}
	return out, nil
}

func jsonPretty(s string) (string, error) {
	var buf strings.Builder
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return "", fmt.Errorf("action: json pretty: %w", err)
	}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("action: json pretty: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func jsonMinify(s string) (string, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return "", fmt.Errorf("action: json minify: %w", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("action: json minify: %w", err)
	}
	return string(b), nil
}
