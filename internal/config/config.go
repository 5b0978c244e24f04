package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Report input settings
	ReportPath string
	Encoding   string

	// Export settings
	ExportDir  string
	ExportFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ReportPath string
	Encoding   string
	ExportPath string
	Suite      string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ReportPath: DefaultReportFile,
		Encoding:   DefaultEncoding,
		ExportDir:  DefaultExportDir,
		ExportFile: DefaultExportFile,
	}
}

// LoadEnv applies environment overrides, reading a .env file first when one
// exists. A missing .env file is not an error.
func (c *Config) LoadEnv() {
	_ = godotenv.Load(".env")

	if v := os.Getenv(EnvReport); v != "" {
		c.ReportPath = v
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		c.Encoding = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = v
	}
}

// GetReportPath returns the report path, using the flag if provided
func (c *Config) GetReportPath() string {
	if c.Flags.ReportPath != "" {
		return c.Flags.ReportPath
	}
	return c.ReportPath
}

// GetEncoding returns the report encoding, using the flag if provided
func (c *Config) GetEncoding() string {
	if c.Flags.Encoding != "" {
		return c.Flags.Encoding
	}
	return c.Encoding
}

// GetExportPath returns the full path to the export JSON file.
// Resolves to an absolute path so export and view always read/write the
// same file regardless of cwd.
func (c *Config) GetExportPath() string {
	if c.Flags.ExportPath != "" {
		if abs, err := filepath.Abs(c.Flags.ExportPath); err == nil {
			return abs
		}
		return c.Flags.ExportPath
	}
	p := filepath.Join(c.ExportDir, c.ExportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
