package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/artem13815/resume-category/pkg/model"
)

// Client fetches published model artifacts from an HTTP artifact registry:
// GET {BaseURL}/{name}.
type Client struct {
	BaseURL  string
	Token    string
	MaxBytes int64
	httpDo   *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Token:    token,
		MaxBytes: 256 << 20,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Fetch implements model.Source.
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	if c.BaseURL == "" {
		return nil, errors.New("artifact registry url is empty")
	}
	endpoint := fmt.Sprintf("%s/%s", c.BaseURL, url.PathEscape(name))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", model.ErrArtifactNotFound, name)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("artifact registry http %d for %s", resp.StatusCode, name)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > c.MaxBytes {
		return nil, fmt.Errorf("artifact %s exceeds %d bytes", name, c.MaxBytes)
	}
	return data, nil
}

// Ping checks the registry answers for the manifest or reports it missing.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Fetch(ctx, model.ManifestName)
	if err == nil || errors.Is(err, model.ErrArtifactNotFound) {
		return nil
	}
	return err
}
