package recognize

// Rank-adjusted confidence thresholds. Detection models are often
// miscalibrated at the tail: a flat global threshold over-rejects
// top-ranked but moderate-confidence results and under-rejects
// low-ranked noise. The primary test raises the absolute bar with rank;
// the fallback accepts borderline candidates that clearly outmargin
// their nearest competitor.
const (
	primaryBase      = 0.5
	primaryRankStep  = 0.1
	fallbackMinConf  = 0.2
	fallbackMaxRank  = 3
	fallbackMinDelta = 0.15
)

// Candidate is one entry of a ranked detection list.
type Candidate struct {
	// ID is the language code or language id.
	ID string

	// Confidence is the detector's confidence in [0, 1].
	Confidence float64
}

// rankAccept applies the rank-adjusted confidence rule to a target id
// within a rank-sorted candidate list. A target absent from the list
// never matches.
func rankAccept(ranked []Candidate, target string) bool {
	for i, c := range ranked {
		if c.ID != target {
			continue
		}

		// Primary: absolute bar, decaying with rank.
		if c.Confidence > primaryBase+primaryRankStep*float64(i) {
			return true
		}

		// Fallback: margin call, only trusted near the top.
		if c.Confidence <= fallbackMinConf || i >= fallbackMaxRank {
			return false
		}
		next := 0.0
		if i+1 < len(ranked) {
			next = ranked[i+1].Confidence
		}
		return c.Confidence-next > fallbackMinDelta
	}
	return false
}
