package core

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		DatasetPath:   "/data/practices.csv",
		ResultLimit:   10,
		Workers:       2,
		Precision:     2,
		Output:        schema.JSONOut,
		LookupTimeout: time.Second,
		ODSBaseURL:    contract.DefaultODSBaseURL,
		Metrics: []schema.MetricDefinition{
			{Name: "overallexp", Weight: 2},
			{Name: "AntibioticPrescribing", Invert: true, Weight: 1},
		},
	}
}

func testDataset() *schema.Dataset {
	return &schema.Dataset{
		Source:        "/data/practices.csv",
		Columns:       []string{"gp_code", "practice_name", "overallexp", "AntibioticPrescribing"},
		MetricColumns: []string{"overallexp", "AntibioticPrescribing"},
		Records: []schema.PracticeRecord{
			{Code: "F83004", Name: "Archway Medical Centre", Values: map[string]float64{"overallexp": 10, "AntibioticPrescribing": 1}},
			{Code: "F83006", Values: map[string]float64{"overallexp": 20, "AntibioticPrescribing": 3}},
			{Code: "F83010", Values: map[string]float64{"overallexp": 30, "AntibioticPrescribing": 2}},
		},
	}
}

// quietHeaders redirects run headers into a buffer for the duration of a test.
func quietHeaders(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := headerOut
	headerOut = &buf
	t.Cleanup(func() { headerOut = old })
	return &buf
}

func TestGetScoreResults(t *testing.T) {
	headers := quietHeaders(t)
	cfg := testConfig()

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, cfg.DatasetPath, contract.DatasetOptions{}).Return(testDataset(), nil)

	out, err := GetScoreResults(context.Background(), cfg, loader, nil)
	require.NoError(t, err)
	loader.AssertExpectations(t)

	assert.Equal(t, 3, out.TotalPractices)
	assert.Empty(t, out.SkippedMetrics)
	require.Len(t, out.Results, 3)
	assert.Equal(t, "F83010", out.Results[0].Code)
	assert.InDelta(t, 2.5, out.Results[0].Score, 1e-9)
	// F83004 and F83006 tie on 1.0 and are ordered by code.
	assert.Equal(t, "F83004", out.Results[1].Code)
	assert.Equal(t, "F83006", out.Results[2].Code)

	assert.Contains(t, headers.String(), "Dataset: practices.csv (ICB: all)")
}

func TestGetScoreResultsLimitAndICB(t *testing.T) {
	quietHeaders(t)
	cfg := testConfig()
	cfg.ResultLimit = 1
	cfg.ICB = "QMJ"

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, cfg.DatasetPath, contract.DatasetOptions{ICB: "QMJ"}).Return(testDataset(), nil)

	out, err := GetScoreResults(context.Background(), cfg, loader, nil)
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, 3, out.TotalPractices)
}

func TestGetScoreResultsZeroLimitKeepsAll(t *testing.T) {
	headers := quietHeaders(t)
	cfg := testConfig()
	cfg.ResultLimit = 0

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(testDataset(), nil)

	out, err := GetScoreResults(context.Background(), cfg, loader, nil)
	require.NoError(t, err)
	assert.Len(t, out.Results, 3)
	assert.Contains(t, headers.String(), "showing all")
}

func TestGetScoreResultsErrors(t *testing.T) {
	quietHeaders(t)

	t.Run("no dataset path", func(t *testing.T) {
		cfg := testConfig()
		cfg.DatasetPath = ""
		_, err := GetScoreResults(context.Background(), cfg, &contract.MockDatasetLoader{}, nil)
		assert.ErrorIs(t, err, ErrNoDataset)
	})

	t.Run("loader failure", func(t *testing.T) {
		cfg := testConfig()
		loader := &contract.MockDatasetLoader{}
		loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
		_, err := GetScoreResults(context.Background(), cfg, loader, nil)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("no practices after ICB filter", func(t *testing.T) {
		cfg := testConfig()
		cfg.ICB = "QWE"
		loader := &contract.MockDatasetLoader{}
		loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(&schema.Dataset{}, nil)
		_, err := GetScoreResults(context.Background(), cfg, loader, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no practices found for ICB QWE")
	})
}

func TestGetScoreResultsSkipsMissingMetric(t *testing.T) {
	quietHeaders(t)
	cfg := testConfig()
	cfg.Metrics = append(cfg.Metrics, schema.MetricDefinition{Name: "qof_total", Weight: 1})

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(testDataset(), nil)

	out, err := GetScoreResults(WithSuppressHeader(context.Background()), cfg, loader, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"qof_total"}, out.SkippedMetrics)
	assert.InDelta(t, 3.0, out.Results[0].MaxScore, 1e-9)
}

func TestGetScoreResultsResolvesNames(t *testing.T) {
	quietHeaders(t)
	cfg := testConfig()
	cfg.ResolveNames = true

	resolver := &contract.MockNameResolver{}
	resolver.On("Resolve", mock.Anything, "F83006").Return("Ritchie Street Group Practice")
	resolver.On("Resolve", mock.Anything, "F83010").Return(schema.UnknownName)

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(testDataset(), nil)

	out, err := GetScoreResults(context.Background(), cfg, loader, resolver)
	require.NoError(t, err)
	resolver.AssertExpectations(t)
	// F83004 already has a name and is not looked up.
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, "F83004")

	names := map[string]string{}
	for _, r := range out.Results {
		names[r.Code] = r.Name
	}
	assert.Equal(t, "Archway Medical Centre", names["F83004"])
	assert.Equal(t, "Ritchie Street Group Practice", names["F83006"])
	assert.Equal(t, schema.UnknownName, names["F83010"])
}

func TestGetScoreResultsForceLookupKeepsDatasetNameOnFailure(t *testing.T) {
	quietHeaders(t)
	cfg := testConfig()
	cfg.ResolveNames = true
	cfg.ForceLookup = true

	resolver := &contract.MockNameResolver{}
	resolver.On("Resolve", mock.Anything, "F83004").Return(schema.UnknownName)
	resolver.On("Resolve", mock.Anything, "F83006").Return("Ritchie Street")
	resolver.On("Resolve", mock.Anything, "F83010").Return("Hanley Primary Care")

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(testDataset(), nil)

	out, err := GetScoreResults(context.Background(), cfg, loader, resolver)
	require.NoError(t, err)
	resolver.AssertNumberOfCalls(t, "Resolve", 3)

	for _, r := range out.Results {
		if r.Code == "F83004" {
			assert.Equal(t, "Archway Medical Centre", r.Name)
		}
	}
}

func TestGetLookupResults(t *testing.T) {
	headers := quietHeaders(t)
	cfg := testConfig()

	resolver := &contract.MockNameResolver{}
	resolver.On("Resolve", mock.Anything, "F83004").Return("Archway Medical Centre")
	resolver.On("Resolve", mock.Anything, "Y99999").Return("")

	lookups, err := GetLookupResults(context.Background(), cfg, resolver, []string{"F83004", "Y99999"})
	require.NoError(t, err)
	assert.Equal(t, []schema.NameLookup{
		{Code: "F83004", Name: "Archway Medical Centre"},
		{Code: "Y99999", Name: schema.UnknownName},
	}, lookups)
	assert.Contains(t, headers.String(), "Looking up 2 codes")

	_, err = GetLookupResults(context.Background(), cfg, resolver, nil)
	assert.Error(t, err)
}

func TestLookupNamesAppliesTimeout(t *testing.T) {
	resolver := &contract.MockNameResolver{}
	resolver.On("Resolve", mock.Anything, "F83004").Return("Archway Medical Centre").Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
	})

	names := lookupNames(context.Background(), resolver, []string{"F83004"}, 4, time.Second)
	assert.Equal(t, []string{"Archway Medical Centre"}, names)
}

func TestLookupNamesManyCodes(t *testing.T) {
	codes := []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7"}
	resolver := &contract.MockNameResolver{}
	for _, c := range codes {
		resolver.On("Resolve", mock.Anything, c).Return("name-" + c)
	}

	names := lookupNames(context.Background(), resolver, codes, 3, 0)
	for i, c := range codes {
		assert.Equal(t, "name-"+c, names[i])
	}
}

func TestShouldSuppressHeader(t *testing.T) {
	assert.False(t, shouldSuppressHeader(context.Background()))
	assert.True(t, shouldSuppressHeader(WithSuppressHeader(context.Background())))
	ctx := context.WithValue(context.Background(), suppressHeaderKey, "yes")
	assert.False(t, shouldSuppressHeader(ctx))
}

func TestMissingColumns(t *testing.T) {
	ds := testDataset()
	missing := missingColumns(ds, []schema.MetricDefinition{{Name: "overallexp"}, {Name: "qof_total"}})
	assert.Equal(t, []string{"qof_total"}, missing)
	assert.Nil(t, missingColumns(ds, nil))
}

func TestGetScoreResultsBlankDatasetNameBecomesUnknown(t *testing.T) {
	quietHeaders(t)
	cfg := testConfig()
	cfg.ResolveNames = true

	ds := testDataset()
	ds.Records[1].Name = "   "

	resolver := &contract.MockNameResolver{}
	resolver.On("Resolve", mock.Anything, "F83006").Return(schema.UnknownName)
	resolver.On("Resolve", mock.Anything, "F83010").Return(schema.UnknownName)

	loader := &contract.MockDatasetLoader{}
	loader.On("Load", mock.Anything, mock.Anything, mock.Anything).Return(ds, nil)

	out, err := GetScoreResults(context.Background(), cfg, loader, resolver)
	require.NoError(t, err)
	resolver.AssertExpectations(t)

	for _, r := range out.Results {
		if r.Code == "F83006" {
			assert.Equal(t, schema.UnknownName, r.Name)
		}
	}
}
