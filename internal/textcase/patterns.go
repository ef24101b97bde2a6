package textcase

import "regexp"

// builtinPatterns maps builtin case ids to anchored patterns. A builtin
// case matches only when the pattern consumes the entire text, not a
// substring of it.
var builtinPatterns = map[string]*regexp.Regexp{
	// General patterns.
	"url":        anchored(`https?://[^\s/$.?#].[^\s]*`),
	"email":      anchored(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
	"path":       anchored(`(?:~?/[^\s/]+(?:/[^\s/]+)*/?|[A-Za-z]:\\[^\s\\]+(?:\\[^\s\\]+)*\\?)`),
	"uuid":       anchored(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`),
	"ipv4":       anchored(`(?:(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`),
	"ipv6":       anchored(`(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|(?:[0-9a-fA-F]{1,4}:)*::(?:[0-9a-fA-F]{1,4}:)*[0-9a-fA-F]{0,4}`),
	"mac":        anchored(`(?:[0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}`),
	"timestamp":  anchored(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`),
	"date":       anchored(`\d{4}[-/.]\d{1,2}[-/.]\d{1,2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{4}`),
	"time":       anchored(`\d{1,2}:\d{2}(?::\d{2})?(?:\s?[APap][Mm])?`),
	"hex-color":  anchored(`#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})`),
	"semver":     anchored(`v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?`),
	"number":     anchored(`[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`),
	"phone":      anchored(`\+?[0-9][0-9 ().-]{6,18}[0-9]`),
	"git-hash":   anchored(`[0-9a-f]{7,40}`),
	"base64":     anchored(`(?:[A-Za-z0-9+/]{4})+(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?`),

	// Naming conventions.
	"camel-case":           anchored(`[a-z][a-z0-9]*(?:[A-Z][a-z0-9]*)+`),
	"pascal-case":          anchored(`(?:[A-Z][a-z0-9]+){2,}`),
	"snake-case":           anchored(`[a-z][a-z0-9]*(?:_[a-z0-9]+)+`),
	"screaming-snake-case": anchored(`[A-Z][A-Z0-9]*(?:_[A-Z0-9]+)+`),
	"kebab-case":           anchored(`[a-z][a-z0-9]*(?:-[a-z0-9]+)+`),
	"train-case":           anchored(`[A-Z][a-z0-9]*(?:-[A-Z][a-z0-9]*)+`),
	"dot-case":             anchored(`[a-z][a-z0-9]*(?:\.[a-z0-9]+)+`),
}

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)$`)
}

// BuiltinPattern returns the compiled anchored pattern for a builtin case
// id, or nil if the id is not in the catalog.
func BuiltinPattern(id string) *regexp.Regexp {
	return builtinPatterns[id]
}

// IsBuiltinPattern reports whether id names a builtin pattern.
func IsBuiltinPattern(id string) bool {
	_, ok := builtinPatterns[id]
	return ok
}

// BuiltinPatternIDs returns all builtin pattern ids, unordered.
func BuiltinPatternIDs() []string {
	ids := make([]string, 0, len(builtinPatterns))
	for id := range builtinPatterns {
		ids = append(ids, id)
	}
	return ids
}
