package domain

// Status values reported by vitest for suites and assertions.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusPending = "pending"
)

// Report is the top-level vitest/jest JSON report document.
// Counters are taken as reported by the test runner and are never
// recomputed here; cross-checking lives in the report package.
type Report struct {
	NumTotalTestSuites   int     `json:"numTotalTestSuites"`
	NumPassedTestSuites  int     `json:"numPassedTestSuites"`
	NumFailedTestSuites  int     `json:"numFailedTestSuites"`
	NumPendingTestSuites int     `json:"numPendingTestSuites"`
	NumTotalTests        int     `json:"numTotalTests"`
	NumPassedTests       int     `json:"numPassedTests"`
	NumFailedTests       int     `json:"numFailedTests"`
	NumPendingTests      int     `json:"numPendingTests"`
	TestResults          []Suite `json:"testResults"`
}

// Suite is one test file's aggregated results.
type Suite struct {
	Name             string      `json:"name"`
	Status           string      `json:"status"`
	AssertionResults []Assertion `json:"assertionResults"`
}

// Assertion is a single test case's result within a suite.
// FailureMessages is only populated for failed assertions and may be
// multi-line; summaries surface the first line only.
type Assertion struct {
	FullName        string   `json:"fullName"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failureMessages,omitempty"`
}

// Failed reports whether the assertion has failed status.
func (a Assertion) Failed() bool {
	return a.Status == StatusFailed
}
