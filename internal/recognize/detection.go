package recognize

// Detection is the shared, lazily-populated classification cache for one
// match call. Each expensive ranking runs at most once per text and is
// reused by every rule in the call, regardless of which specific case id
// a rule asks about.
//
// A Detection belongs to a single orchestrator call and is not safe for
// concurrent use; concurrent dispatches each get their own.
type Detection struct {
	natural     []Candidate
	naturalDone bool

	program     []Candidate
	programDone bool
}

// NewDetection creates an empty cache. Tests inject pre-populated caches
// via Seed.
func NewDetection() *Detection {
	return &Detection{}
}

// Seed pre-populates the cache, marking both rankings as computed. The
// orchestrator will not invoke the detectors for a seeded cache.
func (d *Detection) Seed(natural, program []Candidate) {
	d.natural = natural
	d.naturalDone = true
	d.program = program
	d.programDone = true
}

func (d *Detection) naturalRank(text string, rank func(string) []Candidate) []Candidate {
	if !d.naturalDone {
		d.natural = rank(text)
		d.naturalDone = true
	}
	return d.natural
}

func (d *Detection) programRank(text string, rank func(string) []Candidate) []Candidate {
	if !d.programDone {
		d.program = rank(text)
		d.programDone = true
	}
	return d.program
}
