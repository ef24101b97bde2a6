package recognize

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/classifier"
	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/textcase"
)

// NaturalRanker ranks natural languages for a text sample.
type NaturalRanker interface {
	Rank(text string) []Candidate
}

// ProgramRanker ranks programming languages for a text sample.
type ProgramRanker interface {
	Rank(text string) []Candidate
}

// RankerFunc adapts a function to both ranker interfaces.
type RankerFunc func(text string) []Candidate

// Rank calls the function.
func (f RankerFunc) Rank(text string) []Candidate { return f(text) }

// CustomSource resolves user-defined case definitions from the settings
// store.
type CustomSource interface {
	// RegexDef returns the stored pattern and flags for a custom regex
	// case id. Flags is a subset of "ims".
	RegexDef(id string) (pattern, flags string, ok bool)

	// ModelThreshold returns the confidence threshold for a custom model
	// case id.
	ModelThreshold(id string) (float64, bool)
}

// Config carries the Recognizer's collaborators. Nil fields disable the
// corresponding strategies (those cases simply never match).
type Config struct {
	Natural NaturalRanker
	Program ProgramRanker
	Custom  CustomSource
	Models  classifier.Classifier
	Log     *zap.Logger
}

// Recognizer evaluates rule cases against text samples. It is read-only
// after construction and safe for concurrent use; per-call mutable state
// lives in the Detection cache.
type Recognizer struct {
	natural NaturalRanker
	program ProgramRanker
	custom  CustomSource
	models  classifier.Classifier
	log     *zap.Logger
}

// New creates a Recognizer.
func New(cfg Config) *Recognizer {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Recognizer{
		natural: cfg.Natural,
		program: cfg.Program,
		custom:  cfg.Custom,
		models:  cfg.Models,
		log:     log,
	}
}

// Recognize reports whether the rule's case matches the text. The
// Detection cache must be shared across all rules of one match call.
func (r *Recognizer) Recognize(ctx context.Context, text string, ru rule.Rule, det *Detection) bool {
	switch ru.Case.Kind() {
	case textcase.KindSkip:
		// Always matches; no classification cost is paid.
		return true

	case textcase.KindBuiltin:
		return r.matchBuiltin(text, ru.Case.ID())

	case textcase.KindNatural:
		if r.natural == nil {
			return false
		}
		return rankAccept(det.naturalRank(text, r.natural.Rank), ru.Case.ID())

	case textcase.KindProgramming:
		if r.program == nil {
			return false
		}
		return rankAccept(det.programRank(text, r.program.Rank), ru.Case.ID())

	case textcase.KindCustomRegex:
		return r.matchCustomRegex(text, ru.Case.ID())

	case textcase.KindCustomModel:
		return r.matchCustomModel(ctx, text, ru.Case.ID())

	default:
		return false
	}
}

// matchBuiltin tests the anchored catalog pattern; the whole text must
// match, not a substring.
func (r *Recognizer) matchBuiltin(text, id string) bool {
	re := textcase.BuiltinPattern(id)
	if re == nil {
		r.log.Warn("builtin case without pattern", zap.String("case", id))
		return false
	}
	return re.MatchString(text)
}

// matchCustomRegex tests the user's stored pattern for any match. A
// malformed pattern is a non-match, never a fatal error.
func (r *Recognizer) matchCustomRegex(text, id string) bool {
	if r.custom == nil {
		return false
	}
	pattern, flags, ok := r.custom.RegexDef(id)
	if !ok {
		return false
	}
	if fl := sanitizeFlags(flags); fl != "" {
		pattern = "(?" + fl + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		r.log.Warn("malformed custom pattern",
			zap.String("case", id),
			zap.Error(err))
		return false
	}
	return re.MatchString(text)
}

// matchCustomModel asks the classifier for a confidence and compares it
// against the stored threshold (inclusive). A missing model or a
// classifier failure is a non-match.
func (r *Recognizer) matchCustomModel(ctx context.Context, text, id string) bool {
	if r.custom == nil || r.models == nil {
		return false
	}
	threshold, ok := r.custom.ModelThreshold(id)
	if !ok {
		return false
	}
	conf, ok, err := r.models.Predict(ctx, id, text)
	if err != nil {
		r.log.Warn("classifier predict failed",
			zap.String("case", id),
			zap.Error(err))
		return false
	}
	return ok && conf >= threshold
}

func sanitizeFlags(flags string) string {
	var b strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			b.WriteRune(f)
		}
	}
	return b.String()
}
