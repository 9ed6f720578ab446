package ods

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testBase = "https://ods.example.test/ORD/2-0-0"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		resp     schema.HTTPResponse
		err      error
		expected string
	}{
		{
			name:     "success returns organisation name",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`{"Organisation": {"Name": "Test GP Practice"}}`)},
			expected: "Test GP Practice",
		},
		{
			name:     "not found",
			resp:     schema.HTTPResponse{StatusCode: 404, Body: []byte(`{"errorCode": 404}`)},
			expected: "Unknown",
		},
		{
			name:     "organisation without name",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`{"Organisation": {}}`)},
			expected: "Unknown",
		},
		{
			name:     "no organisation",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`{}`)},
			expected: "Unknown",
		},
		{
			name:     "null organisation",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`{"Organisation": null}`)},
			expected: "Unknown",
		},
		{
			name:     "empty name",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`{"Organisation": {"Name": "  "}}`)},
			expected: "Unknown",
		},
		{
			name:     "name is not a string",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`{"Organisation": {"Name": 42}}`)},
			expected: "Unknown",
		},
		{
			name:     "malformed body",
			resp:     schema.HTTPResponse{StatusCode: 200, Body: []byte(`<html>`)},
			expected: "Unknown",
		},
		{
			name:     "server error",
			resp:     schema.HTTPResponse{StatusCode: 500},
			expected: "Unknown",
		},
		{
			name:     "other 2xx status",
			resp:     schema.HTTPResponse{StatusCode: 203, Body: []byte(`{"Organisation": {"Name": "Partial GP"}}`)},
			expected: "Partial GP",
		},
		{
			name:     "transport error",
			err:      errors.New("connection refused"),
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getter := new(contract.MockHTTPGetter)
			getter.On("Get", mock.Anything, testBase+"/organisations/A12345").Return(tt.resp, tt.err)

			r := NewResolver(testBase, getter)
			assert.Equal(t, tt.expected, r.Resolve(context.Background(), "A12345"))
			getter.AssertExpectations(t)
		})
	}
}

func TestResolveCancelledContext(t *testing.T) {
	getter := new(contract.MockHTTPGetter)
	r := NewResolver(testBase, getter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, schema.UnknownName, r.Resolve(ctx, "A12345"))
	getter.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestURLFor(t *testing.T) {
	r := NewResolver(testBase+"/", nil)
	assert.Equal(t, testBase+"/organisations/F83004", r.URLFor("F83004"))
	assert.Equal(t, testBase+"/organisations/A%2F1%20B", r.URLFor("A/1 B"))
}

func TestNewResolverDefaultBase(t *testing.T) {
	r := NewResolver("", nil)
	assert.Equal(t, contract.DefaultODSBaseURL+"/organisations/F83004", r.URLFor("F83004"))
}
