package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidArtifact marks an artifact that decoded but is inconsistent.
	ErrInvalidArtifact = errors.New("invalid artifact")
	// ErrArtifactNotFound is returned by a Source for a missing artifact.
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Classifier kinds accepted in the classifier artifact.
const (
	KindLinear = "linear"
	KindKNN    = "knn"
)

// Classifier maps one feature row to exactly one category id.
// Implementations are immutable and safe for concurrent use.
type Classifier interface {
	Predict(x SparseVector) int
	NumFeatures() int
	Classes() []int
}

type classifierHeader struct {
	Kind string `json:"kind"`
}

// DecodeClassifier parses a classifier artifact, dispatching on its kind.
func DecodeClassifier(data []byte) (Classifier, error) {
	var h classifierHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode classifier: %w", err)
	}
	switch h.Kind {
	case KindLinear, "":
		return decodeLinear(data)
	case KindKNN:
		return decodeKNN(data)
	default:
		return nil, fmt.Errorf("classifier: %w: unknown kind %q", ErrInvalidArtifact, h.Kind)
	}
}
