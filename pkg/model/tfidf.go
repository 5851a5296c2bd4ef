package model

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/artem13815/resume-category/pkg/nlp"
)

// Norm names accepted in the vectorizer artifact.
const (
	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = "none"
)

// vectorizerFile is the on-disk form of a fitted TF-IDF vectorizer.
type vectorizerFile struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Lowercase    *bool          `json:"lowercase,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty"`
	StopWords    []string       `json:"stop_words,omitempty"`
	NGramRange   [2]int         `json:"ngram_range,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf,omitempty"`
	Binary       bool           `json:"binary,omitempty"`
	UseIDF       *bool          `json:"use_idf,omitempty"`
	Norm         string         `json:"norm,omitempty"`
}

// Vectorizer turns cleaned text into a TF-IDF feature row. It is
// immutable once decoded and safe for concurrent use.
type Vectorizer struct {
	vocab     map[string]int
	idf       []float64
	dim       int
	lowercase bool
	pattern   *regexp.Regexp
	stop      map[string]struct{}
	minN      int
	maxN      int
	sublinear bool
	binary    bool
	useIDF    bool
	norm      string
}

// DecodeVectorizer parses and validates a vectorizer artifact.
func DecodeVectorizer(data []byte) (*Vectorizer, error) {
	var f vectorizerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode vectorizer: %w", err)
	}
	if len(f.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer: %w: empty vocabulary", ErrInvalidArtifact)
	}
	pattern, err := nlp.CompileTokenPattern(f.TokenPattern)
	if err != nil {
		return nil, fmt.Errorf("vectorizer token pattern: %w", err)
	}
	v := &Vectorizer{
		vocab:     f.Vocabulary,
		idf:       f.IDF,
		dim:       len(f.Vocabulary),
		lowercase: f.Lowercase == nil || *f.Lowercase,
		pattern:   pattern,
		minN:      f.NGramRange[0],
		maxN:      f.NGramRange[1],
		sublinear: f.SublinearTF,
		binary:    f.Binary,
		useIDF:    f.UseIDF == nil || *f.UseIDF,
		norm:      strings.ToLower(f.Norm),
	}
	if v.minN == 0 && v.maxN == 0 {
		v.minN, v.maxN = 1, 1
	}
	if v.minN < 1 || v.maxN < v.minN {
		return nil, fmt.Errorf("vectorizer: %w: ngram_range %v", ErrInvalidArtifact, f.NGramRange)
	}
	switch v.norm {
	case "":
		v.norm = NormL2
	case NormL2, NormL1, NormNone:
	default:
		return nil, fmt.Errorf("vectorizer: %w: unknown norm %q", ErrInvalidArtifact, f.Norm)
	}
	for term, idx := range v.vocab {
		if idx < 0 || idx >= v.dim {
			return nil, fmt.Errorf("vectorizer: %w: term %q has column %d outside [0,%d)", ErrInvalidArtifact, term, idx, v.dim)
		}
	}
	if v.useIDF && len(v.idf) != v.dim {
		return nil, fmt.Errorf("vectorizer: %w: %d idf weights for %d terms", ErrInvalidArtifact, len(v.idf), v.dim)
	}
	if len(f.StopWords) > 0 {
		v.stop = make(map[string]struct{}, len(f.StopWords))
		for _, w := range f.StopWords {
			v.stop[w] = struct{}{}
		}
	}
	return v, nil
}

// Dim returns the number of feature columns.
func (v *Vectorizer) Dim() int { return v.dim }

// Transform vectorizes a single document.
func (v *Vectorizer) Transform(text string) SparseVector {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	tokens := nlp.Tokens(v.pattern, text)
	tokens = nlp.WithoutStopWords(tokens, v.stop)
	tokens = nlp.NGrams(tokens, v.minN, v.maxN)

	counts := make(map[int]float64)
	for _, t := range tokens {
		if idx, ok := v.vocab[t]; ok {
			counts[idx]++
		}
	}
	vec := sparseFromCounts(counts)
	for i, idx := range vec.Indices {
		tf := vec.Values[i]
		switch {
		case v.binary:
			tf = 1
		case v.sublinear:
			tf = 1 + math.Log(tf)
		}
		if v.useIDF {
			tf *= v.idf[idx]
		}
		vec.Values[i] = tf
	}
	normalize(vec.Values, v.norm)
	return vec
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case NormL2:
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
