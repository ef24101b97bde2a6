package recognize

import (
	"github.com/dshills/selact/internal/recognize/codeid"
	"github.com/dshills/selact/internal/recognize/langid"
)

// NaturalFrom adapts the langid detector to the NaturalRanker interface.
func NaturalFrom(d *langid.Detector) NaturalRanker {
	return RankerFunc(func(text string) []Candidate {
		ranked := d.Rank(text)
		out := make([]Candidate, len(ranked))
		for i, c := range ranked {
			out[i] = Candidate{ID: c.Code, Confidence: c.Confidence}
		}
		return out
	})
}

// ProgramFrom adapts the codeid detector to the ProgramRanker interface.
func ProgramFrom(d *codeid.Detector) ProgramRanker {
	return RankerFunc(func(text string) []Candidate {
		ranked := d.Rank(text)
		out := make([]Candidate, len(ranked))
		for i, c := range ranked {
			out[i] = Candidate{ID: c.ID, Confidence: c.Confidence}
		}
		return out
	})
}
