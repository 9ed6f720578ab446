// Package ods resolves GP practice codes to names through the NHS Organisation Data Service.
package ods

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
)

// organisationPayload is the part of an ODS organisation record we read.
type organisationPayload struct {
	Organisation *struct {
		Name string `json:"Name"`
	} `json:"Organisation"`
}

// Resolver looks up practice names with one GET per code.
// It has no retry, cache, rate limit or timeout; callers own cancellation.
type Resolver struct {
	baseURL string
	getter  contract.HTTPGetter
}

var _ contract.NameResolver = &Resolver{} // Compile-time check

// NewResolver returns a Resolver for the given ODS base URL.
// An empty base URL falls back to contract.DefaultODSBaseURL.
func NewResolver(baseURL string, getter contract.HTTPGetter) *Resolver {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = contract.DefaultODSBaseURL
	}
	return &Resolver{baseURL: baseURL, getter: getter}
}

// URLFor returns the organisation endpoint for a practice code.
func (r *Resolver) URLFor(code string) string {
	return r.baseURL + "/organisations/" + url.PathEscape(code)
}

// Resolve returns the organisation name for code, or schema.UnknownName when the
// request fails, the status is not 2xx, or the body has no usable name.
func (r *Resolver) Resolve(ctx context.Context, code string) string {
	if ctx.Err() != nil {
		return schema.UnknownName
	}

	resp, err := r.getter.Get(ctx, r.URLFor(code))
	if err != nil {
		return schema.UnknownName
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return schema.UnknownName
	}
	return parseName(resp.Body)
}

// parseName extracts Organisation.Name from an ODS response body.
func parseName(body []byte) string {
	var payload organisationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return schema.UnknownName
	}
	if payload.Organisation == nil {
		return schema.UnknownName
	}
	name := strings.TrimSpace(payload.Organisation.Name)
	if name == "" {
		return schema.UnknownName
	}
	return name
}
