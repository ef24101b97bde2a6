package action

// BuiltinSpec describes one builtin action.
type BuiltinSpec struct {
	// ID is the catalog identifier.
	ID string

	// Label is the human-readable name shown in toolbars and history.
	Label string

	// NoResult marks side-effecting builtins that produce no text.
	NoResult bool

	// Transform is the pure text function, nil for side-effecting
	// builtins (the executor owns clipboard and opener access).
	Transform func(string) (string, error)
}

// Side-effecting builtin ids handled directly by the executor.
const (
	BuiltinCopy      = "copy"
	BuiltinOpenURLs  = "open-urls"
	BuiltinOpenPaths = "open-paths"
)

var builtins = map[string]BuiltinSpec{
	// Side effects.
	BuiltinCopy:      {ID: BuiltinCopy, Label: "Copy", NoResult: true},
	BuiltinOpenURLs:  {ID: BuiltinOpenURLs, Label: "Open URLs", NoResult: true},
	BuiltinOpenPaths: {ID: BuiltinOpenPaths, Label: "Open Paths", NoResult: true},

	// Naming-convention converters.
	"to-camel-case":           {ID: "to-camel-case", Label: "camelCase", Transform: pure(toCamel)},
	"to-pascal-case":          {ID: "to-pascal-case", Label: "PascalCase", Transform: pure(toPascal)},
	"to-snake-case":           {ID: "to-snake-case", Label: "snake_case", Transform: pure(toSnake)},
	"to-screaming-snake-case": {ID: "to-screaming-snake-case", Label: "SCREAMING_SNAKE_CASE", Transform: pure(toScreamingSnake)},
	"to-kebab-case":           {ID: "to-kebab-case", Label: "kebab-case", Transform: pure(toKebab)},
	"to-train-case":           {ID: "to-train-case", Label: "Train-Case", Transform: pure(toTrain)},
	"to-dot-case":             {ID: "to-dot-case", Label: "dot.case", Transform: pure(toDot)},
	"to-lower-case":           {ID: "to-lower-case", Label: "lower case", Transform: pure(toLower)},
	"to-upper-case":           {ID: "to-upper-case", Label: "UPPER CASE", Transform: pure(toUpper)},
	"to-title-case":           {ID: "to-title-case", Label: "Title Case", Transform: pure(toTitle)},

	// Text processors.
	"trim":                {ID: "trim", Label: "Trim", Transform: pure(trim)},
	"trim-lines":          {ID: "trim-lines", Label: "Trim Lines", Transform: pure(trimLines)},
	"collapse-whitespace": {ID: "collapse-whitespace", Label: "Collapse Whitespace", Transform: pure(collapseWhitespace)},
	"count-words":         {ID: "count-words", Label: "Count Words", Transform: pure(countWords)},
	"reverse-lines":       {ID: "reverse-lines", Label: "Reverse Lines", Transform: pure(reverseLines)},
	"sort-lines":          {ID: "sort-lines", Label: "Sort Lines", Transform: pure(sortLines)},
	"dedupe-lines":        {ID: "dedupe-lines", Label: "Dedupe Lines", Transform: pure(dedupeLines)},
	"base64-encode":       {ID: "base64-encode", Label: "Base64 Encode", Transform: pure(base64Encode)},
	"base64-decode":       {ID: "base64-decode", Label: "Base64 Decode", Transform: base64Decode},
	"url-encode":          {ID: "url-encode", Label: "URL Encode", Transform: pure(urlEncode)},
	"url-decode":          {ID: "url-decode", Label: "URL Decode", Transform: urlDecode},
	"json-escape":         {ID: "json-escape", Label: "JSON Escape", Transform: jsonEscape},
	"json-unescape":       {ID: "json-unescape", Label: "JSON Unescape", Transform: jsonUnescape},
	"json-pretty":         {ID: "json-pretty", Label: "JSON Pretty", Transform: jsonPretty},
	"json-minify":         {ID: "json-minify", Label: "JSON Minify", Transform: jsonMinify},
}

func pure(fn func(string) string) func(string) (string, error) {
	return func(s string) (string, error) { return fn(s), nil }
}

// Lookup returns the builtin spec for an id.
func Lookup(id string) (BuiltinSpec, bool) {
	b, ok := builtins[id]
	return b, ok
}

// IsBuiltin reports whether id names a builtin action.
func IsBuiltin(id string) bool {
	_, ok := builtins[id]
	return ok
}

// BuiltinIDs returns all builtin action ids, unordered.
func BuiltinIDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	return ids
}

// Label returns the display label for an action. Builtin labels come from
// the catalog; user-defined actions fall back to their id, which callers
// replace with the stored definition's name when available.
func Label(a Action) string {
	if a.Kind() == KindBuiltin {
		if b, ok := builtins[a.ID()]; ok {
			return b.Label
		}
	}
	return a.String()
}
