package resume

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/artem13815/resume-category/pkg/category"
	"github.com/artem13815/resume-category/pkg/nlp"
)

// ClassificationService describes the upload → extract → classify use case.
type ClassificationService interface {
	// Classify extracts text from doc and predicts its category. Blank
	// text is reported as ErrEmptyContent and never reaches the classifier.
	Classify(ctx context.Context, doc Document) (Result, error)
	// ClassifyText predicts the category of already extracted text.
	ClassifyText(ctx context.Context, text string) (Result, error)
}

type classificationService struct {
	parser     *Parser
	classifier category.UseCase
	recorder   Recorder
}

// NewClassificationService creates the default implementation. A nil
// recorder disables measurements.
func NewClassificationService(parser *Parser, classifier category.UseCase, recorder Recorder) ClassificationService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &classificationService{parser: parser, classifier: classifier, recorder: recorder}
}

func (s *classificationService) Classify(ctx context.Context, doc Document) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	ext := doc.Extension()
	// arbitrary client extensions must not become metric labels
	metricExt := ext
	if !s.parser.Supports(ext) {
		metricExt = "other"
	}
	ex := s.parser.ExtractDetailed(doc.Data, ext)
	chars := utf8.RuneCountInString(ex.Text)

	outcome := OutcomeOK
	switch {
	case !ex.Supported:
		outcome = OutcomeUnsupported
	case nlp.IsBlank(ex.Text):
		outcome = OutcomeEmpty
	}
	s.recorder.RecordExtraction(metricExt, outcome, time.Since(start), chars)

	logger := log.Ctx(ctx).With().Str("filename", doc.Filename).Str("extension", ext).Logger()
	if outcome != OutcomeOK {
		logger.Info().Str("outcome", outcome).Int("fragments", ex.Fragments).Msg("no classifiable text")
		return Result{}, ErrEmptyContent
	}

	res := s.predict(ex.Text)
	res.Filename = doc.Filename
	res.Extension = ext
	res.Fragments = ex.Fragments
	res.CharsExtracted = chars
	logger.Info().
		Int("fragments", ex.Fragments).
		Int("chars", chars).
		Int("category_id", res.Prediction.ID).
		Str("category", res.Prediction.Label).
		Msg("resume classified")
	return res, nil
}

func (s *classificationService) ClassifyText(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if nlp.IsBlank(text) {
		return Result{}, ErrEmptyContent
	}
	res := s.predict(text)
	res.CharsExtracted = utf8.RuneCountInString(text)
	log.Ctx(ctx).Debug().Str("category", res.Prediction.Label).Msg("text classified")
	return res, nil
}

func (s *classificationService) predict(text string) Result {
	start := time.Now()
	p := s.classifier.Classify(text)
	s.recorder.RecordPrediction(p.Label, time.Since(start))
	return Result{Text: text, Prediction: p}
}
