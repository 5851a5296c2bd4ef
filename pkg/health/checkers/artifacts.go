package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/resume-category/pkg/model"
)

// ArtifactsChecker reports ready once the model bundle is loaded.
type ArtifactsChecker struct {
	artifacts *model.Artifacts
}

func NewArtifactsChecker(a *model.Artifacts) *ArtifactsChecker {
	return &ArtifactsChecker{artifacts: a}
}

func (c *ArtifactsChecker) Name() string { return "model" }

func (c *ArtifactsChecker) Check(_ context.Context) error {
	a := c.artifacts
	if a == nil || a.Vectorizer == nil || a.Classifier == nil || a.Encoder == nil {
		return errors.New("model artifacts not loaded")
	}
	return nil
}
