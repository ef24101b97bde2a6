package action

import (
	"strings"
	"unicode"
)

// splitWords breaks an identifier or phrase into lowercase words. It
// splits on whitespace, underscores, hyphens and dots, and on case
// boundaries inside camelCase and PascalCase runs. Acronym runs stay
// together: "handleHTTPError" -> ["handle", "http", "error"].
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func toCamel(s string) string {
	words := splitWords(s)
	for i := 1; i < len(words); i++ {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, "")
}

func toPascal(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, "")
}

func toSnake(s string) string {
	return strings.Join(splitWords(s), "_")
}

func toScreamingSnake(s string) string {
	return strings.ToUpper(toSnake(s))
}

func toKebab(s string) string {
	return strings.Join(splitWords(s), "-")
}

func toTrain(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, "-")
}

func toDot(s string) string {
	return strings.Join(splitWords(s), ".")
}

func toLower(s string) string {
	return strings.ToLower(s)
}

func toUpper(s string) string {
	return strings.ToUpper(s)
}

func toTitle(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, " ")
}
