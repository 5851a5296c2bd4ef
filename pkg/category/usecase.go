package category

import (
	"fmt"

	"github.com/artem13815/resume-category/pkg/model"
	"github.com/artem13815/resume-category/pkg/nlp"
)

// Predictor maps cleaned text to a raw category id.
// *model.Artifacts is the production implementation.
type Predictor interface {
	Predict(cleaned string) int
}

// Prediction is the outcome of classifying one text.
type Prediction struct {
	ID      int    `json:"categoryId"`
	Label   string `json:"category"`
	Cleaned string `json:"-"`
}

// Known reports whether the predicted id was found in the table.
func (p Prediction) Known() bool { return p.Label != Unknown }

// UseCase describes classification of résumé text into a category.
type UseCase interface {
	// Classify never fails: ids missing from the table yield Unknown.
	// Callers must not pass blank text.
	Classify(text string) Prediction
}

type service struct {
	predictor Predictor
}

// NewService wraps loaded artifacts. The predictor is never mutated, so one
// service may serve any number of concurrent requests.
func NewService(p Predictor) UseCase {
	return &service{predictor: p}
}

func (s *service) Classify(text string) Prediction {
	cleaned := nlp.Clean(text)
	id := s.predictor.Predict(cleaned)
	return Prediction{ID: id, Label: Label(id), Cleaned: cleaned}
}

// CheckEncoder compares the label encoder shipped with the model against
// the fixed table and describes every disagreement. The table always wins.
func CheckEncoder(enc *model.LabelEncoder) []string {
	var problems []string
	for id := 0; id < enc.Len(); id++ {
		name, _ := enc.Decode(id)
		if want := Label(id); want != name {
			problems = append(problems, fmt.Sprintf("id %d: encoder has %q, table has %q", id, name, want))
		}
	}
	if enc.Len() != Count() {
		problems = append(problems, fmt.Sprintf("encoder has %d labels, table has %d", enc.Len(), Count()))
	}
	return problems
}
