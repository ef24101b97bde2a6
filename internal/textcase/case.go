package textcase

import (
	"errors"
	"fmt"
	"strings"
)

// Identifier prefixes marking user-defined cases.
const (
	RegexPrefix = "regexp-"
	ModelPrefix = "model-"
)

// Parse errors.
var (
	ErrUnknownCase = errors.New("textcase: unknown case identifier")
)

// Kind discriminates the Case variants.
type Kind int

const (
	// KindSkip matches every text and performs no classification.
	KindSkip Kind = iota

	// KindBuiltin is a builtin anchored pattern from the catalog.
	KindBuiltin

	// KindNatural is a natural language identified by ISO-639-1 code.
	KindNatural

	// KindProgramming is a programming language from the catalog.
	KindProgramming

	// KindCustomRegex is a user-defined regular expression.
	KindCustomRegex

	// KindCustomModel is a user-trained classifier model.
	KindCustomModel
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSkip:
		return "skip"
	case KindBuiltin:
		return "builtin"
	case KindNatural:
		return "natural"
	case KindProgramming:
		return "programming"
	case KindCustomRegex:
		return "regex"
	case KindCustomModel:
		return "model"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Case identifies one text classification test. The zero value is Skip.
// Case is comparable and safe to copy.
type Case struct {
	kind Kind
	id   string
}

// Skip returns the case that matches every text.
func Skip() Case {
	return Case{}
}

// Builtin returns the case for a builtin pattern id.
func Builtin(id string) Case {
	return Case{kind: KindBuiltin, id: id}
}

// Natural returns the case for an ISO-639-1 language code.
func Natural(code string) Case {
	return Case{kind: KindNatural, id: code}
}

// Programming returns the case for a programming language id.
func Programming(id string) Case {
	return Case{kind: KindProgramming, id: id}
}

// CustomRegex returns the case for a user-defined regex. The id is stored
// with its prefix marker.
func CustomRegex(id string) Case {
	if !strings.HasPrefix(id, RegexPrefix) {
		id = RegexPrefix + id
	}
	return Case{kind: KindCustomRegex, id: id}
}

// CustomModel returns the case for a user-trained model.
func CustomModel(id string) Case {
	if !strings.HasPrefix(id, ModelPrefix) {
		id = ModelPrefix + id
	}
	return Case{kind: KindCustomModel, id: id}
}

// Parse resolves a stored case identifier into its tagged variant.
// The empty string is Skip. Prefixed identifiers become custom variants;
// everything else is looked up in the builtin, natural-language and
// programming-language catalogs, in that order.
func Parse(id string) (Case, error) {
	switch {
	case id == "":
		return Skip(), nil
	case strings.HasPrefix(id, RegexPrefix):
		return Case{kind: KindCustomRegex, id: id}, nil
	case strings.HasPrefix(id, ModelPrefix):
		return Case{kind: KindCustomModel, id: id}, nil
	case IsBuiltinPattern(id):
		return Case{kind: KindBuiltin, id: id}, nil
	case IsNaturalLanguage(id):
		return Case{kind: KindNatural, id: id}, nil
	case IsProgrammingLanguage(id):
		return Case{kind: KindProgramming, id: id}, nil
	default:
		return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, id)
	}
}

// Kind returns the variant discriminator.
func (c Case) Kind() Kind { return c.kind }

// ID returns the stored identifier. For Skip it is empty; for custom
// variants it includes the prefix marker.
func (c Case) ID() string { return c.id }

// IsSkip reports whether this is the skip case.
func (c Case) IsSkip() bool { return c.kind == KindSkip }

// IsCustom reports whether this is a user-defined case.
func (c Case) IsCustom() bool {
	return c.kind == KindCustomRegex || c.kind == KindCustomModel
}

// String returns the identifier, or "skip" for the skip case.
func (c Case) String() string {
	if c.kind == KindSkip {
		return "skip"
	}
	return c.id
}
