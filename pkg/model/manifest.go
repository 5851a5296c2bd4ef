package model

import (
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

// Default artifact names, matching the files the training notebook exports.
const (
	ManifestName   = "manifest.yaml"
	VectorizerName = "tfidf.json"
	ClassifierName = "clf.json"
	EncoderName    = "encoder.json"
)

// Manifest describes one published set of artifacts.
type Manifest struct {
	Version    string `yaml:"version"`
	Vectorizer string `yaml:"vectorizer"`
	Classifier string `yaml:"classifier"`
	Encoder    string `yaml:"encoder"`
}

// DefaultManifest is used when a source carries no manifest.yaml.
func DefaultManifest() Manifest {
	return Manifest{
		Version:    "unversioned",
		Vectorizer: VectorizerName,
		Classifier: ClassifierName,
		Encoder:    EncoderName,
	}
}

// ParseManifest reads a manifest and fills omitted names with defaults.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	def := DefaultManifest()
	if m.Version == "" {
		m.Version = def.Version
	}
	if m.Vectorizer == "" {
		m.Vectorizer = def.Vectorizer
	}
	if m.Classifier == "" {
		m.Classifier = def.Classifier
	}
	if m.Encoder == "" {
		m.Encoder = def.Encoder
	}
	return m, nil
}

// Names lists the artifact files the manifest points at.
func (m Manifest) Names() []string {
	return []string{m.Vectorizer, m.Classifier, m.Encoder}
}
