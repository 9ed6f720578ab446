package contract

import (
	"context"

	"github.com/huangsam/gpscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockHTTPGetter is a mock implementation of HTTPGetter for testing.
type MockHTTPGetter struct {
	mock.Mock
}

var _ HTTPGetter = &MockHTTPGetter{} // Compile-time check

// Get implements the HTTPGetter interface.
func (m *MockHTTPGetter) Get(ctx context.Context, url string) (schema.HTTPResponse, error) {
	args := m.Called(ctx, url)
	resp, _ := args.Get(0).(schema.HTTPResponse)
	return resp, args.Error(1)
}

// MockNameResolver is a mock implementation of NameResolver for testing.
type MockNameResolver struct {
	mock.Mock
}

var _ NameResolver = &MockNameResolver{} // Compile-time check

// Resolve implements the NameResolver interface.
func (m *MockNameResolver) Resolve(ctx context.Context, code string) string {
	args := m.Called(ctx, code)
	return args.String(0)
}

// MockDatasetLoader is a mock implementation of DatasetLoader for testing.
type MockDatasetLoader struct {
	mock.Mock
}

var _ DatasetLoader = &MockDatasetLoader{} // Compile-time check

// Load implements the DatasetLoader interface.
func (m *MockDatasetLoader) Load(ctx context.Context, path string, opts DatasetOptions) (*schema.Dataset, error) {
	args := m.Called(ctx, path, opts)
	ds, _ := args.Get(0).(*schema.Dataset)
	return ds, args.Error(1)
}
