package resume

import (
	"errors"
	"time"

	"github.com/artem13815/resume-category/pkg/category"
)

// ErrEmptyContent is returned when a document yields no classifiable text:
// an unsupported format, an unreadable file or whitespace only.
var ErrEmptyContent = errors.New("the uploaded file appears to be empty or unreadable")

// Extraction outcomes reported to a Recorder.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnsupported = "unsupported"
)

// Document — загруженный файл резюме. Lives for one request only.
type Document struct {
	Filename string
	Data     []byte
}

// Extension returns the declared extension derived from the file name.
func (d Document) Extension() string { return ExtensionFromFilename(d.Filename) }

// Result — итог классификации одного резюме.
type Result struct {
	Filename       string
	Extension      string
	Fragments      int
	CharsExtracted int
	Text           string
	Prediction     category.Prediction
}

// Recorder receives pipeline measurements; telemetry.Provider implements it.
type Recorder interface {
	RecordExtraction(ext, outcome string, d time.Duration, chars int)
	RecordPrediction(label string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordExtraction(string, string, time.Duration, int) {}
func (nopRecorder) RecordPrediction(string, time.Duration)              {}
