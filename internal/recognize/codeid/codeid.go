// Package codeid ranks programming languages for a text sample.
//
// Ranking uses a weighted signal model: each language owns a set of
// regex signals (keywords, operators, structural markers) with weights,
// and a language's raw score is the weight sum of its matched signals.
// Confidences are the raw scores normalized across all scoring
// languages, so they form a distribution comparable under the
// rank-adjusted confidence rule.
//
// The signal table is compiled on first use and read-only afterwards,
// safe for concurrent ranking.
package codeid

import (
	"regexp"
	"sort"
	"sync"
)

// Candidate is one ranked detection result.
type Candidate struct {
	// ID is the programming language id from the case catalog.
	ID string

	// Confidence is the normalized score in [0, 1].
	Confidence float64
}

type signal struct {
	expr   string
	weight float64

	re *regexp.Regexp
}

// Detector ranks programming languages by weighted signal matching.
type Detector struct {
	once    sync.Once
	signals map[string][]signal
}

// New creates a detector. Signal compilation is deferred to the first
// Rank call.
func New() *Detector {
	return &Detector{}
}

// Rank returns candidates ordered by descending confidence. Languages
// with no matching signal are omitted; an empty result means the text
// does not look like code.
func (d *Detector) Rank(text string) []Candidate {
	d.once.Do(d.compile)

	scores := make(map[string]float64)
	var total float64
	for id, sigs := range d.signals {
		var score float64
		for _, s := range sigs {
			if s.re.MatchString(text) {
				score += s.weight
			}
		}
		if score > 0 {
			scores[id] = score
			total += score
		}
	}
	if total == 0 {
		return nil
	}

	out := make([]Candidate, 0, len(scores))
	for id, score := range scores {
		out = append(out, Candidate{ID: id, Confidence: score / total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (d *Detector) compile() {
	d.signals = make(map[string][]signal, len(signalTable))
	for id, sigs := range signalTable {
		compiled := make([]signal, len(sigs))
		for i, s := range sigs {
			s.re = regexp.MustCompile(s.expr)
			compiled[i] = s
		}
		d.signals[id] = compiled
	}
}
