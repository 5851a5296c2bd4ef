package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-category/pkg/model"
	"github.com/artem13815/resume-category/pkg/model/modeltest"
)

func newRegistry(t *testing.T, token string, files map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		data, ok := files[r.URL.Path[1:]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchLoadsArtifacts(t *testing.T) {
	srv := newRegistry(t, "s3cret", modeltest.Files())

	a, err := model.Load(context.Background(), New(srv.URL+"/", "s3cret"))
	require.NoError(t, err)
	assert.Equal(t, 13, a.Predict("hadoop"))
}

func TestFetchErrors(t *testing.T) {
	srv := newRegistry(t, "s3cret", modeltest.Files())

	_, err := New(srv.URL, "s3cret").Fetch(context.Background(), "missing.json")
	assert.ErrorIs(t, err, model.ErrArtifactNotFound)

	_, err = New(srv.URL, "wrong").Fetch(context.Background(), model.EncoderName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	c := New(srv.URL, "s3cret")
	c.MaxBytes = 8
	_, err = c.Fetch(context.Background(), model.EncoderName)
	assert.ErrorContains(t, err, "exceeds 8 bytes")

	_, err = New("", "").Fetch(context.Background(), model.EncoderName)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	srv := newRegistry(t, "", map[string][]byte{})
	assert.NoError(t, New(srv.URL, "").Ping(context.Background()), "missing manifest still means reachable")

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()
	assert.Error(t, New(down.URL, "").Ping(context.Background()))
}
