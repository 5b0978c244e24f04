package domain

// FailureRecord is one failed assertion extracted from a report.
// Message holds the full (possibly multi-line) diagnostic text.
type FailureRecord struct {
	Suite    string `json:"suite"`
	FullName string `json:"fullName"`
	Message  string `json:"message"`
}

// ExportMeta contains counters written alongside an exported failure list.
type ExportMeta struct {
	ReportPath         string `json:"report_path"`
	TotalTests         int    `json:"total_tests"`
	PassedTests        int    `json:"passed_tests"`
	FailedTests        int    `json:"failed_tests"`
	FailedSuites       int    `json:"failed_suites"`
	RecomputedFailures int    `json:"recomputed_failures"`
	Timestamp          string `json:"timestamp"`
}

// ExportOutput is the complete structure written by the export command.
type ExportOutput struct {
	Meta     ExportMeta      `json:"meta"`
	Failures []FailureRecord `json:"failures"`
}
