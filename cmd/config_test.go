package cmd

import (
	"testing"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleConfigIsValid(t *testing.T) {
	v := viper.New()
	v.SetConfigFile("../examples/gpscore.yaml")
	require.NoError(t, v.ReadInConfig())

	raw := &contract.ConfigRawInput{}
	require.NoError(t, v.Unmarshal(raw))

	cfg := &contract.Config{}
	require.NoError(t, contract.ProcessAndValidate(cfg, raw))

	assert.Equal(t, schema.NorthCentralLondonICB, cfg.ICB)
	assert.Equal(t, 0, cfg.ResultLimit)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
	assert.True(t, cfg.ResolveNames)
	require.Len(t, cfg.Metrics, 5)
	assert.Equal(t, "AntibioticPrescribing", cfg.Metrics[3].Name)
	assert.True(t, cfg.Metrics[3].Invert)
}

func TestScoreHelpExcludeExampleIsValid(t *testing.T) {
	raw := &contract.ConfigRawInput{
		Limit:          contract.DefaultResultLimit,
		Workers:        1,
		Precision:      contract.DefaultPrecision,
		Output:         string(schema.TextOut),
		Emoji:          "no",
		Color:          "no",
		ExcludeMetrics: "qof_total,qof_hypertension",
	}
	cfg := &contract.Config{}
	require.NoError(t, contract.ProcessAndValidate(cfg, raw))
	assert.Len(t, cfg.Metrics, len(schema.DefaultMetrics())-2)
	assert.Contains(t, scoreCmd.Long, raw.ExcludeMetrics)
}
