package ods

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// HTTPClientGetter implements contract.HTTPGetter on top of an *http.Client.
type HTTPClientGetter struct {
	client *http.Client
}

var _ contract.HTTPGetter = &HTTPClientGetter{} // Compile-time check

// NewHTTPGetter wraps client; a nil client means http.DefaultClient.
func NewHTTPGetter(client *http.Client) *HTTPClientGetter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClientGetter{client: client}
}

// Get implements the HTTPGetter interface.
func (g *HTTPClientGetter) Get(ctx context.Context, url string) (schema.HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return schema.HTTPResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return schema.HTTPResponse{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return schema.HTTPResponse{StatusCode: resp.StatusCode}, fmt.Errorf("read body: %w", err)
	}
	return schema.HTTPResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
