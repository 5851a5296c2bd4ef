package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordExtraction(t *testing.T) {
	p := NewProvider()
	p.RecordExtraction("pdf", "ok", 20*time.Millisecond, 1500)
	p.RecordExtraction("pdf", "ok", 10*time.Millisecond, 300)
	p.RecordExtraction("", "unsupported", time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.Metrics.Extractions.WithLabelValues("pdf", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Metrics.Extractions.WithLabelValues("none", "unsupported")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.Metrics.ExtractionDuration))
}

func TestRecordPrediction(t *testing.T) {
	p := NewProvider()
	p.RecordPrediction("HR", time.Millisecond)
	p.RecordPrediction("HR", time.Millisecond)
	p.RecordPrediction("Sales", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.Metrics.Predictions.WithLabelValues("HR")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.Metrics.Predictions))
}

func TestProvidersAreIndependent(t *testing.T) {
	a, b := NewProvider(), NewProvider()
	a.RecordPrediction("HR", time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Metrics.Predictions.WithLabelValues("HR")))
}
