package textcase

// naturalLanguages is the supported set of ISO-639-1 codes for
// natural-language cases. The set mirrors what the language identification
// backend can rank; codes outside it never parse as a natural case.
var naturalLanguages = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"hi": "Hindi",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// programmingLanguages maps programming-language case ids to display names.
var programmingLanguages = map[string]string{
	"c":          "C",
	"cpp":        "C++",
	"csharp":     "C#",
	"css":        "CSS",
	"go":         "Go",
	"html":       "HTML",
	"java":       "Java",
	"javascript": "JavaScript",
	"json":       "JSON",
	"kotlin":     "Kotlin",
	"lua":        "Lua",
	"markdown":   "Markdown",
	"php":        "PHP",
	"python":     "Python",
	"ruby":       "Ruby",
	"rust":       "Rust",
	"shell":      "Shell",
	"sql":        "SQL",
	"swift":      "Swift",
	"typescript": "TypeScript",
	"xml":        "XML",
	"yaml":       "YAML",
}

// IsNaturalLanguage reports whether code is a supported ISO-639-1 code.
func IsNaturalLanguage(code string) bool {
	_, ok := naturalLanguages[code]
	return ok
}

// IsProgrammingLanguage reports whether id names a supported programming
// language.
func IsProgrammingLanguage(id string) bool {
	_, ok := programmingLanguages[id]
	return ok
}

// NaturalLanguageCodes returns all supported ISO-639-1 codes, unordered.
func NaturalLanguageCodes() []string {
	codes := make([]string, 0, len(naturalLanguages))
	for code := range naturalLanguages {
		codes = append(codes, code)
	}
	return codes
}

// ProgrammingLanguageIDs returns all programming language ids, unordered.
func ProgrammingLanguageIDs() []string {
	ids := make([]string, 0, len(programmingLanguages))
	for id := range programmingLanguages {
		ids = append(ids, id)
	}
	return ids
}

// LanguageName returns the display name for a natural or programming
// language id, or the id itself when unknown.
func LanguageName(id string) string {
	if name, ok := naturalLanguages[id]; ok {
		return name
	}
	if name, ok := programmingLanguages[id]; ok {
		return name
	}
	return id
}
