package model_test

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-category/pkg/model"
	"github.com/artem13815/resume-category/pkg/model/modeltest"
)

func TestVectorizerTransform(t *testing.T) {
	v, err := model.DecodeVectorizer(modeltest.Vectorizer())
	require.NoError(t, err)
	assert.Equal(t, 5, v.Dim())

	// columns are alphabetical: hadoop, java, lawyer, python, sales
	got := v.Transform("Java java PYTHON and the unknownword")
	assert.Equal(t, []int{1, 3}, got.Indices)
	require.Len(t, got.Values, 2)
	assert.InDelta(t, 2/math.Sqrt(5), got.Values[0], 1e-12)
	assert.InDelta(t, 1/math.Sqrt(5), got.Values[1], 1e-12)

	assert.Equal(t, 0, v.Transform("").Len())
}

func TestVectorizerOptions(t *testing.T) {
	raw := `{
		"vocabulary": {"go": 0, "go dev": 1, "dev": 2},
		"idf": [1, 2, 1],
		"lowercase": false,
		"ngram_range": [1, 2],
		"sublinear_tf": true,
		"norm": "none"
	}`
	v, err := model.DecodeVectorizer([]byte(raw))
	require.NoError(t, err)

	got := v.Transform("go dev go Go")
	assert.Equal(t, []int{0, 1, 2}, got.Indices)
	assert.InDelta(t, 1+math.Log(2), got.Values[0], 1e-12)
	assert.InDelta(t, 2.0, got.Values[1], 1e-12)
	assert.InDelta(t, 1.0, got.Values[2], 1e-12)
}

func TestVectorizerBinaryL1(t *testing.T) {
	raw := `{"vocabulary": {"aa": 0, "bb": 1}, "use_idf": false, "binary": true, "norm": "l1"}`
	v, err := model.DecodeVectorizer([]byte(raw))
	require.NoError(t, err)
	got := v.Transform("aa aa aa bb")
	assert.Equal(t, []float64{0.5, 0.5}, got.Values)
}

func TestDecodeVectorizerRejectsInconsistent(t *testing.T) {
	for name, raw := range map[string]string{
		"idf length":   `{"vocabulary": {"aa": 0, "bb": 1}, "idf": [1]}`,
		"column range": `{"vocabulary": {"aa": 0, "bb": 5}, "idf": [1, 1]}`,
		"empty":        `{"vocabulary": {}}`,
		"norm":         `{"vocabulary": {"aa": 0}, "idf": [1], "norm": "max"}`,
		"ngram":        `{"vocabulary": {"aa": 0}, "idf": [1], "ngram_range": [2, 1]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := model.DecodeVectorizer([]byte(raw))
			assert.ErrorIs(t, err, model.ErrInvalidArtifact)
		})
	}
	_, err := model.DecodeVectorizer([]byte(`{not json`))
	assert.Error(t, err)
}

func TestLinearPredict(t *testing.T) {
	c, err := model.DecodeClassifier(modeltest.Classifier())
	require.NoError(t, err)
	assert.Equal(t, 5, c.NumFeatures())
	assert.Len(t, c.Classes(), 25)

	assert.Equal(t, 15, c.Predict(model.SparseVector{Indices: []int{1, 3}, Values: []float64{0.8, 0.2}}))
	assert.Equal(t, 20, c.Predict(model.SparseVector{Indices: []int{1, 3}, Values: []float64{0.2, 0.8}}))
	// all scores tie at zero: lowest class index wins
	assert.Equal(t, 0, c.Predict(model.SparseVector{}))
}

func TestLinearBinary(t *testing.T) {
	raw := `{"kind": "linear", "classes": [3, 7], "coef": [[1, -1]], "intercept": [0]}`
	c, err := model.DecodeClassifier([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 7, c.Predict(model.SparseVector{Indices: []int{0}, Values: []float64{1}}))
	assert.Equal(t, 3, c.Predict(model.SparseVector{Indices: []int{1}, Values: []float64{1}}))
}

func TestDecodeClassifierRejects(t *testing.T) {
	for name, raw := range map[string]string{
		"kind":        `{"kind": "svm"}`,
		"rows":        `{"kind": "linear", "classes": [0, 1, 2], "coef": [[1], [1]]}`,
		"ragged":      `{"kind": "linear", "classes": [0, 1, 2], "coef": [[1], [1, 2], [1]]}`,
		"intercept":   `{"kind": "linear", "classes": [0, 1, 2], "coef": [[1], [1], [1]], "intercept": [0]}`,
		"one class":   `{"kind": "linear", "classes": [0], "coef": [[1]]}`,
		"knn target":  `{"kind": "knn", "classes": [0], "n_features": 1, "fit_x": [{"indices": [0], "values": [1]}], "fit_y": [3]}`,
		"knn index":   `{"kind": "knn", "classes": [0], "n_features": 1, "fit_x": [{"indices": [4], "values": [1]}], "fit_y": [0]}`,
		"knn weights": `{"kind": "knn", "classes": [0], "n_features": 1, "weights": "rank", "fit_x": [{"indices": [0], "values": [1]}], "fit_y": [0]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := model.DecodeClassifier([]byte(raw))
			assert.ErrorIs(t, err, model.ErrInvalidArtifact)
		})
	}
}

const knnArtifact = `{
	"kind": "knn",
	"classes": [4, 9],
	"n_neighbors": %d,
	"weights": %q,
	"n_features": 2,
	"fit_x": [
		{"indices": [0], "values": [1]},
		{"indices": [0], "values": [0.9]},
		{"indices": [1], "values": [1]}
	],
	"fit_y": [0, 0, 1]
}`

func decodeKNN(t *testing.T, k int, weights string) model.Classifier {
	t.Helper()
	c, err := model.DecodeClassifier([]byte(fmt.Sprintf(knnArtifact, k, weights)))
	require.NoError(t, err)
	return c
}

func TestKNNPredict(t *testing.T) {
	x := model.SparseVector{Indices: []int{1}, Values: []float64{1}}

	assert.Equal(t, 4, decodeKNN(t, 3, "uniform").Predict(x), "majority of three")
	assert.Equal(t, 9, decodeKNN(t, 1, "uniform").Predict(x), "nearest only")
	assert.Equal(t, 9, decodeKNN(t, 3, "distance").Predict(x), "exact match takes the vote")

	// rows 0 and 2 are equally near; the tied vote goes to class index 0
	tie := model.SparseVector{Indices: []int{0, 1}, Values: []float64{1, 1}}
	assert.Equal(t, 4, decodeKNN(t, 2, "uniform").Predict(tie))
}

func TestLabelEncoder(t *testing.T) {
	e, err := model.DecodeLabelEncoder(modeltest.Encoder())
	require.NoError(t, err)
	assert.Equal(t, 25, e.Len())
	l, ok := e.Decode(15)
	assert.True(t, ok)
	assert.Equal(t, "Java Developer", l)
	_, ok = e.Decode(25)
	assert.False(t, ok)
	_, ok = e.Decode(-1)
	assert.False(t, ok)

	_, err = model.DecodeLabelEncoder([]byte(`{"classes": []}`))
	assert.ErrorIs(t, err, model.ErrInvalidArtifact)
}

func TestLoadFromDir(t *testing.T) {
	a := modeltest.Artifacts(t)
	assert.Equal(t, "unversioned", a.Manifest.Version)
	assert.Equal(t, 15, a.Predict("java developer java"))
	assert.Equal(t, 22, a.Predict("sales"))
}

func TestLoadWithManifest(t *testing.T) {
	dir := t.TempDir()
	for name, data := range modeltest.Files() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "v2-"+name), data, 0o644))
	}
	manifest := "version: \"2024.05\"\nvectorizer: v2-tfidf.json\nclassifier: v2-clf.json\nencoder: v2-encoder.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, model.ManifestName), []byte(manifest), 0o644))

	a, err := model.Load(context.Background(), model.NewDirSource(dir))
	require.NoError(t, err)
	assert.Equal(t, "2024.05", a.Manifest.Version)
	assert.Equal(t, 20, a.Predict("python"))
}

func TestLoadMissingArtifact(t *testing.T) {
	dir := modeltest.WriteDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, model.EncoderName)))

	_, err := model.Load(context.Background(), model.NewDirSource(dir))
	assert.ErrorIs(t, err, model.ErrArtifactNotFound)
}

func TestLoadDimensionMismatch(t *testing.T) {
	dir := modeltest.WriteDir(t)
	clf := `{"kind": "linear", "classes": [0, 1], "coef": [[1, 2, 3]]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, model.ClassifierName), []byte(clf), 0o644))

	_, err := model.Load(context.Background(), model.NewDirSource(dir))
	assert.ErrorIs(t, err, model.ErrInvalidArtifact)
}

func TestDirSourceRejectsPaths(t *testing.T) {
	_, err := model.NewDirSource(t.TempDir()).Fetch(context.Background(), "../etc/passwd")
	assert.Error(t, err)
}

func TestParseManifestDefaults(t *testing.T) {
	m, err := model.ParseManifest([]byte("version: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "x", m.Version)
	assert.Equal(t, []string{model.VectorizerName, model.ClassifierName, model.EncoderName}, m.Names())

	_, err = model.ParseManifest([]byte("version: [unclosed"))
	assert.Error(t, err)
}
