// Package langid ranks natural languages for a text sample.
//
// Detection is backed by lingua's n-gram models, restricted to the
// supported ISO-639-1 code set. Building the detector loads language
// models, so construction is deferred until the first ranking request
// and the built detector is shared read-only afterwards.
package langid

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Candidate is one ranked detection result.
type Candidate struct {
	// Code is the ISO-639-1 language code, lowercase.
	Code string

	// Confidence is the detector's confidence in [0, 1].
	Confidence float64
}

// Detector ranks natural languages over a fixed candidate code set.
type Detector struct {
	codes []string

	once  sync.Once
	inner lingua.LanguageDetector
	byISO map[string]lingua.Language
}

// New creates a detector for the given ISO-639-1 codes. Codes without a
// corresponding lingua language are ignored.
func New(codes []string) *Detector {
	return &Detector{codes: codes}
}

// Rank returns candidates ordered by descending confidence. Languages
// the detector considers impossible (zero confidence) are omitted.
func (d *Detector) Rank(text string) []Candidate {
	d.once.Do(d.build)
	if d.inner == nil {
		return nil
	}

	values := d.inner.ComputeLanguageConfidenceValues(text)
	out := make([]Candidate, 0, len(values))
	for _, v := range values {
		if v.Value() <= 0 {
			continue
		}
		out = append(out, Candidate{
			Code:       strings.ToLower(v.Language().IsoCode639_1().String()),
			Confidence: v.Value(),
		})
	}
	return out
}

func (d *Detector) build() {
	d.byISO = make(map[string]lingua.Language)
	for _, lang := range lingua.AllLanguages() {
		d.byISO[strings.ToLower(lang.IsoCode639_1().String())] = lang
	}

	langs := make([]lingua.Language, 0, len(d.codes))
	for _, code := range d.codes {
		if lang, ok := d.byISO[strings.ToLower(code)]; ok {
			langs = append(langs, lang)
		}
	}
	if len(langs) < 2 {
		// lingua needs at least two candidate languages to discriminate.
		return
	}

	d.inner = lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()
}
