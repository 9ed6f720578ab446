package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// FileOnlyOutputModes lists output modes that cannot be streamed to stdout.
var FileOnlyOutputModes = map[OutputMode]struct{}{
	ParquetOut: {},
	XLSXOut:    {},
}

// UnknownName is returned whenever a practice name cannot be resolved.
const UnknownName = "Unknown"

// Identity columns recognised in a practice dataset. Every other column is a metric.
const (
	CodeColumn         = "gp_code"
	PracticeNameColumn = "practice_name"
	GPNameColumn       = "gp_name"
	PCNCodeColumn      = "pcn_code"
	PCNNameColumn      = "pcn_name"
	ICBCodeColumn      = "icb_code"
	ICBNameColumn      = "icb_name"
	PostcodeColumn     = "postcode"
)

// IdentityColumns lists the non-numeric columns of a practice dataset.
var IdentityColumns = map[string]struct{}{
	CodeColumn:         {},
	PracticeNameColumn: {},
	GPNameColumn:       {},
	PCNCodeColumn:      {},
	PCNNameColumn:      {},
	ICBCodeColumn:      {},
	ICBNameColumn:      {},
	PostcodeColumn:     {},
}

// NorthCentralLondonICB is the ICB code for North Central London.
const NorthCentralLondonICB = "QMJ"
