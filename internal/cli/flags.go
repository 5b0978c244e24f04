package cli

import "vrs/internal/config"

// Flags holds command-line flags
type Flags struct {
	ReportPath string
	Encoding   string
	ExportPath string
	Suite      string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ReportPath: f.ReportPath,
		Encoding:   f.Encoding,
		ExportPath: f.ExportPath,
		Suite:      f.Suite,
	}
}
