package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-category/pkg/health"
	"github.com/artem13815/resume-category/pkg/health/checkers"
	"github.com/artem13815/resume-category/pkg/model"
	"github.com/artem13815/resume-category/pkg/model/modeltest"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestReady(t *testing.T) {
	svc := health.NewService(
		checkers.NewArtifactsChecker(modeltest.Artifacts(t)),
		checkers.NewRegistryChecker(pinger{}),
	)
	assert.NoError(t, svc.Ready(context.Background()))
	assert.NoError(t, health.NewService().Ready(context.Background()))
}

func TestReadyNamesFailingChecker(t *testing.T) {
	down := errors.New("dial tcp: connection refused")
	svc := health.NewService(
		checkers.NewArtifactsChecker(modeltest.Artifacts(t)),
		checkers.NewRegistryChecker(pinger{err: down}),
	)
	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "artifact-registry")
}

func TestArtifactsCheckerNotLoaded(t *testing.T) {
	assert.Error(t, checkers.NewArtifactsChecker(nil).Check(context.Background()))
	assert.Error(t, checkers.NewArtifactsChecker(&model.Artifacts{}).Check(context.Background()))
}

func TestReadyReportsEveryFailure(t *testing.T) {
	svc := health.NewService(
		checkers.NewArtifactsChecker(nil),
		checkers.NewRegistryChecker(pinger{err: errors.New("timeout")}),
	)
	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model: model artifacts not loaded")
	assert.Contains(t, err.Error(), "artifact-registry: timeout")

	assert.Equal(t, map[string]string{
		"model":             "model artifacts not loaded",
		"artifact-registry": "timeout",
	}, svc.Status(context.Background()))
}
