// Package modeltest provides a tiny artifact bundle for tests.
package modeltest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/artem13815/resume-category/pkg/model"
)

// Terms maps each vocabulary term to the category id it votes for.
var Terms = map[string]int{
	"hadoop": 13,
	"java":   15,
	"lawyer": 0,
	"python": 20,
	"sales":  22,
}

// Labels is the encoder payload, in id order.
var Labels = []string{
	"Advocate", "Arts", "Automation Testing", "Blockchain", "Business Analyst",
	"Civil Engineer", "Data Science", "Database", "DevOps Engineer", "DotNet Developer",
	"ETL Developer", "Electrical Engineering", "HR", "Hadoop", "Health and fitness",
	"Java Developer", "Mechanical Engineer", "Network Security Engineer", "Operations Manager", "PMO",
	"Python Developer", "SAP Developer", "Sales", "Testing", "Web Designing",
}

func vocabulary() map[string]int {
	terms := make([]string, 0, len(Terms))
	for t := range Terms {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return vocab
}

// Vectorizer returns a vectorizer artifact over Terms with unit idf.
func Vectorizer() []byte {
	vocab := vocabulary()
	idf := make([]float64, len(vocab))
	for i := range idf {
		idf[i] = 1
	}
	return mustJSON(map[string]any{
		"vocabulary":    vocab,
		"idf":           idf,
		"token_pattern": `(?u)\b\w\w+\b`,
		"stop_words":    []string{"and", "the"},
		"norm":          "l2",
	})
}

// Classifier returns a linear classifier over all 25 ids in which every
// term votes only for its own category.
func Classifier() []byte {
	vocab := vocabulary()
	classes := make([]int, len(Labels))
	coef := make([][]float64, len(Labels))
	for id := range Labels {
		classes[id] = id
		coef[id] = make([]float64, len(vocab))
	}
	for term, id := range Terms {
		coef[id][vocab[term]] = 1
	}
	return mustJSON(map[string]any{
		"kind":      model.KindLinear,
		"classes":   classes,
		"coef":      coef,
		"intercept": make([]float64, len(Labels)),
	})
}

// Encoder returns a label encoder artifact matching Labels.
func Encoder() []byte {
	return mustJSON(map[string]any{"classes": Labels})
}

// Files returns the bundle keyed by artifact name.
func Files() map[string][]byte {
	return map[string][]byte{
		model.VectorizerName: Vectorizer(),
		model.ClassifierName: Classifier(),
		model.EncoderName:    Encoder(),
	}
}

// WriteDir writes the bundle into a temporary directory and returns it.
func WriteDir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()
	for name, data := range Files() {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// Artifacts loads the bundle the way the server does.
func Artifacts(tb testing.TB) *model.Artifacts {
	tb.Helper()
	a, err := model.Load(context.Background(), model.NewDirSource(WriteDir(tb)))
	if err != nil {
		tb.Fatalf("load fixture artifacts: %v", err)
	}
	return a
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
