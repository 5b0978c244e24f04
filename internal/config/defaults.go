package config

const (
	// DefaultReportFile is the default report file name
	DefaultReportFile = "vitest-results.json"
	// DefaultEncoding is the default report text encoding
	DefaultEncoding = "utf-8"
	// DefaultExportDir is the default export directory
	DefaultExportDir = "storage"
	// DefaultExportFile is the default export JSON file name
	DefaultExportFile = "failed-tests.json"
)

// Environment variables recognized by LoadEnv (also via a .env file).
const (
	EnvReport    = "VRS_REPORT"
	EnvEncoding  = "VRS_ENCODING"
	EnvExportDir = "VRS_EXPORT_DIR"
)
