package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/gpscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit   = 25
	MaxResultLimit       = 10000
	DefaultPrecision     = 2
	DefaultLookupTimeout = 10 * time.Second
	DefaultODSBaseURL    = "https://directory.spineservices.nhs.uk/ORD/2-0-0"
)

// DefaultWorkers is the default number of concurrent name lookups.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// SupportedDatasetExtensions lists the file extensions the dataset loader accepts.
var SupportedDatasetExtensions = []string{".csv", ".xlsx", ".xlsm"}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// MetricRawInput holds one metric definition from the YAML config file.
// Weight is a pointer so that a missing weight can be told apart from zero.
type MetricRawInput struct {
	Name   string   `mapstructure:"name"`
	Invert bool     `mapstructure:"invert"`
	Weight *float64 `mapstructure:"weight"`
}

// Config holds the runtime configuration for scoring and lookups.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	Sheet       string
	ICB         string

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Detail      bool
	Explain     bool
	Width       int // Terminal width override (0 = auto-detect)

	ResolveNames  bool
	ForceLookup   bool
	LookupTimeout time.Duration
	ODSBaseURL    string

	// Metrics is the active scoring table, after overrides and exclusions.
	Metrics []schema.MetricDefinition

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Dataset       string `mapstructure:"dataset"`
	OutputFile    string `mapstructure:"output-file"`
	Limit         int    `mapstructure:"limit"`
	Workers       int    `mapstructure:"workers"`
	Precision     int    `mapstructure:"precision"`
	Output        string `mapstructure:"output"`
	Detail        bool   `mapstructure:"detail"`
	Width         int    `mapstructure:"width"`
	Emoji         string `mapstructure:"emoji"`
	Color         string `mapstructure:"color"`
	LookupTimeout string `mapstructure:"lookup-timeout"`
	ODSBaseURL    string `mapstructure:"ods-base-url"`

	// --- Fields from scoreCmd.Flags() ---
	Explain        bool   `mapstructure:"explain"`
	ICB            string `mapstructure:"icb"`
	Sheet          string `mapstructure:"sheet"`
	ResolveNames   bool   `mapstructure:"resolve-names"`
	ForceLookup    bool   `mapstructure:"force-lookup"`
	ExcludeMetrics string `mapstructure:"exclude-metrics"`

	// --- Custom metric table from config file ---
	Metrics []MetricRawInput `mapstructure:"metrics"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Metrics != nil {
		clone.Metrics = slices.Clone(c.Metrics)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processLookup(cfg, input); err != nil {
		return err
	}
	if err := processMetrics(cfg, input); err != nil {
		return err
	}
	if err := processDatasetPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Sheet = strings.TrimSpace(input.Sheet)
	cfg.ICB = strings.ToUpper(strings.TrimSpace(input.ICB))

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	// Zero means every practice.
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}
	if _, fileOnly := schema.FileOnlyOutputModes[cfg.Output]; fileOnly && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required when using %s output", cfg.Output)
	}

	return nil
}

// processLookup validates the name lookup settings.
func processLookup(cfg *Config, input *ConfigRawInput) error {
	cfg.ResolveNames = input.ResolveNames
	cfg.ForceLookup = input.ForceLookup

	cfg.LookupTimeout = DefaultLookupTimeout
	if s := strings.TrimSpace(input.LookupTimeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid --lookup-timeout value %q: %w", s, err)
		}
		if d < 0 {
			return fmt.Errorf("lookup-timeout cannot be negative (received %s)", d)
		}
		cfg.LookupTimeout = d
	}

	cfg.ODSBaseURL = strings.TrimRight(strings.TrimSpace(input.ODSBaseURL), "/")
	if cfg.ODSBaseURL == "" {
		cfg.ODSBaseURL = DefaultODSBaseURL
	}
	if !strings.HasPrefix(cfg.ODSBaseURL, "http://") && !strings.HasPrefix(cfg.ODSBaseURL, "https://") {
		return fmt.Errorf("ods-base-url must start with http:// or https:// (received %q)", input.ODSBaseURL)
	}
	return nil
}

// processMetrics builds the active metric table from the defaults or the config file
// override, then drops any excluded metrics.
func processMetrics(cfg *Config, input *ConfigRawInput) error {
	defs := schema.DefaultMetrics()
	if len(input.Metrics) > 0 {
		custom, err := ProcessMetricsRawInput(input.Metrics)
		if err != nil {
			return err
		}
		defs = custom
	}

	if input.ExcludeMetrics != "" {
		for name := range strings.SplitSeq(input.ExcludeMetrics, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			idx := slices.IndexFunc(defs, func(d schema.MetricDefinition) bool { return d.Name == name })
			if idx < 0 {
				return fmt.Errorf("cannot exclude unknown metric '%s'", name)
			}
			defs = slices.Delete(defs, idx, idx+1)
		}
	}

	if len(defs) == 0 {
		return errors.New("at least one metric must remain active")
	}
	cfg.Metrics = defs
	return nil
}

// ProcessMetricsRawInput converts raw metric definitions into validated ones.
// Names must be non-empty and unique, and every weight must be present and positive.
func ProcessMetricsRawInput(raw []MetricRawInput) ([]schema.MetricDefinition, error) {
	defs := make([]schema.MetricDefinition, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, m := range raw {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, fmt.Errorf("metric #%d has no name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("metric '%s' is defined more than once", name)
		}
		seen[name] = struct{}{}
		if m.Weight == nil {
			return nil, fmt.Errorf("metric '%s' has no weight", name)
		}
		if *m.Weight <= 0 {
			return nil, fmt.Errorf("weight for metric '%s' must be greater than 0 (received %.2f)", name, *m.Weight)
		}
		defs = append(defs, schema.MetricDefinition{Name: name, Invert: m.Invert, Weight: *m.Weight})
	}
	return defs, nil
}

// processDatasetPath resolves the dataset path from the positional argument or the config.
// An empty path is allowed here; commands that need a dataset check for it themselves.
func processDatasetPath(cfg *Config, input *ConfigRawInput) error {
	path := input.DatasetPathStr
	if path == "" {
		path = input.Dataset
	}
	if path == "" {
		cfg.DatasetPath = ""
		return nil
	}

	abs, err := ValidateDatasetPath(path)
	if err != nil {
		return err
	}
	cfg.DatasetPath = abs
	return nil
}

// ValidateDatasetPath checks that path names an existing file with a supported
// extension and returns its absolute form.
func ValidateDatasetPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SupportedDatasetExtensions, ext) {
		return "", fmt.Errorf("unsupported dataset format '%s'. must be one of %s", ext, strings.Join(SupportedDatasetExtensions, ", "))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("dataset %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("dataset %s is a directory", path)
	}
	return abs, nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
