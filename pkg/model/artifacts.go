package model

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Artifacts is the loaded, read-only model bundle shared by all requests.
type Artifacts struct {
	Manifest   Manifest
	Vectorizer *Vectorizer
	Classifier Classifier
	Encoder    *LabelEncoder
}

// Load fetches the manifest (optional) and the three artifacts from src,
// decodes them concurrently and checks they belong together.
func Load(ctx context.Context, src Source) (*Artifacts, error) {
	manifest := DefaultManifest()
	raw, err := src.Fetch(ctx, ManifestName)
	switch {
	case err == nil:
		if manifest, err = ParseManifest(raw); err != nil {
			return nil, err
		}
	case errors.Is(err, ErrArtifactNotFound):
	default:
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}

	a := &Artifacts{Manifest: manifest}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := src.Fetch(gctx, manifest.Vectorizer)
		if err != nil {
			return fmt.Errorf("fetch vectorizer: %w", err)
		}
		a.Vectorizer, err = DecodeVectorizer(data)
		return err
	})
	g.Go(func() error {
		data, err := src.Fetch(gctx, manifest.Classifier)
		if err != nil {
			return fmt.Errorf("fetch classifier: %w", err)
		}
		a.Classifier, err = DecodeClassifier(data)
		return err
	})
	g.Go(func() error {
		data, err := src.Fetch(gctx, manifest.Encoder)
		if err != nil {
			return fmt.Errorf("fetch label encoder: %w", err)
		}
		a.Encoder, err = DecodeLabelEncoder(data)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if got, want := a.Classifier.NumFeatures(), a.Vectorizer.Dim(); got != want {
		return nil, fmt.Errorf("%w: classifier expects %d features, vectorizer produces %d", ErrInvalidArtifact, got, want)
	}
	return a, nil
}

// Predict vectorizes already-cleaned text and returns the raw category id.
func (a *Artifacts) Predict(cleaned string) int {
	return a.Classifier.Predict(a.Vectorizer.Transform(cleaned))
}
