// Package classifier defines the contract for user-trained text
// classifiers and ships a small in-process reference implementation.
//
// The engine only depends on the contract: recognition calls Predict and
// compares the returned confidence against the model's stored threshold.
// Model internals (training, persistence, feature extraction) stay behind
// the interface so an external backend can replace them wholesale.
package classifier

import (
	"context"
	"errors"
)

// ErrNoModel is returned when an operation references a model id that has
// never been trained.
var ErrNoModel = errors.New("classifier: no model for id")

// ModelInfo describes a stored model.
type ModelInfo struct {
	// SizeKB is the approximate persisted size of the model.
	SizeKB int
}

// Classifier is the external trainable-classifier contract.
type Classifier interface {
	// Train builds (or rebuilds) the model from positive samples.
	Train(ctx context.Context, modelID string, samples []string) error

	// Predict scores text against the model. The boolean is false when no
	// model exists for the id, mirroring a null confidence; callers treat
	// that as a non-match, not an error.
	Predict(ctx context.Context, modelID, text string) (float64, bool, error)

	// ClearSavedModel removes the stored model.
	ClearSavedModel(ctx context.Context, modelID string) error

	// GetModelInfo reports size information for the stored model.
	GetModelInfo(ctx context.Context, modelID string) (ModelInfo, error)
}
