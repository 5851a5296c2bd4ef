package model

import (
	"encoding/json"
	"fmt"
)

type encoderFile struct {
	Classes []string `json:"classes"`
}

// LabelEncoder decodes category ids into the label strings seen at
// training time. Ids are positions in Classes.
type LabelEncoder struct {
	classes []string
}

// DecodeLabelEncoder parses a label encoder artifact.
func DecodeLabelEncoder(data []byte) (*LabelEncoder, error) {
	var f encoderFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode label encoder: %w", err)
	}
	if len(f.Classes) == 0 {
		return nil, fmt.Errorf("label encoder: %w: no classes", ErrInvalidArtifact)
	}
	return &LabelEncoder{classes: f.Classes}, nil
}

// Len returns the number of encoded labels.
func (e *LabelEncoder) Len() int { return len(e.classes) }

// Decode returns the label for id and whether id is known.
func (e *LabelEncoder) Decode(id int) (string, bool) {
	if id < 0 || id >= len(e.classes) {
		return "", false
	}
	return e.classes[id], true
}
