package classifier

import (
	"context"
	"math"
	"strings"
	"sync"
)

// Memory is an in-process Classifier backed by character-trigram frequency
// profiles. Train accumulates a normalized trigram vector per model;
// Predict reports the cosine similarity between the model vector and the
// text's vector, which lands naturally in [0, 1].
//
// Profiles are read-only after Train returns, so concurrent Predict calls
// need no coordination beyond the map lock.
type Memory struct {
	mu     sync.RWMutex
	models map[string]profile
}

type profile map[string]float64

// NewMemory creates an empty in-memory classifier.
func NewMemory() *Memory {
	return &Memory{models: make(map[string]profile)}
}

// Train builds the model from positive samples, replacing any previous
// model under the same id.
func (m *Memory) Train(_ context.Context, modelID string, samples []string) error {
	p := make(profile)
	for _, s := range samples {
		accumulate(p, s)
	}
	normalize(p)

	m.mu.Lock()
	m.models[modelID] = p
	m.mu.Unlock()
	return nil
}

// Predict returns the cosine similarity between the trained profile and
// the text's trigram profile. The boolean is false when the model id is
// unknown.
func (m *Memory) Predict(_ context.Context, modelID, text string) (float64, bool, error) {
	m.mu.RLock()
	p, ok := m.models[modelID]
	m.mu.RUnlock()
	if !ok {
		return 0, false, nil
	}

	q := make(profile)
	accumulate(q, text)
	normalize(q)

	var dot float64
	for gram, w := range q {
		dot += w * p[gram]
	}
	return dot, true, nil
}

// ClearSavedModel removes the model. Clearing an unknown id is not an
// error.
func (m *Memory) ClearSavedModel(_ context.Context, modelID string) error {
	m.mu.Lock()
	delete(m.models, modelID)
	m.mu.Unlock()
	return nil
}

// GetModelInfo reports the approximate in-memory size of the model.
func (m *Memory) GetModelInfo(_ context.Context, modelID string) (ModelInfo, error) {
	m.mu.RLock()
	p, ok := m.models[modelID]
	m.mu.RUnlock()
	if !ok {
		return ModelInfo{}, ErrNoModel
	}

	bytes := 0
	for gram := range p {
		bytes += len(gram) + 8
	}
	return ModelInfo{SizeKB: (bytes + 1023) / 1024}, nil
}

func accumulate(p profile, text string) {
	runes := []rune(strings.ToLower(text))
	if len(runes) < 3 {
		if len(runes) > 0 {
			p[string(runes)]++
		}
		return
	}
	for i := 0; i+3 <= len(runes); i++ {
		p[string(runes[i:i+3])]++
	}
}

func normalize(p profile) {
	var sum float64
	for _, w := range p {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for gram, w := range p {
		p[gram] = w / norm
	}
}
