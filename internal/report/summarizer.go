package report

import (
	"strings"

	"vrs/internal/domain"
)

// Summarizer answers summary queries over a loaded report. It never
// modifies the report; document order is preserved everywhere.
type Summarizer struct {
	rep *domain.Report
}

// NewSummarizer creates a Summarizer over a loaded report.
func NewSummarizer(rep *domain.Report) *Summarizer {
	return &Summarizer{rep: rep}
}

// SuiteCount pairs a failed suite's name with its failed-assertion count.
type SuiteCount struct {
	Name             string
	FailedAssertions int
}

// SuiteFailures pairs a suite's name with its failed assertions.
type SuiteFailures struct {
	Name       string
	Assertions []domain.Assertion
}

// FailingSuites returns, in document order, every suite whose status is
// failed together with the number of failed assertions inside it.
func (s *Summarizer) FailingSuites() []SuiteCount {
	var out []SuiteCount
	for _, suite := range s.rep.TestResults {
		if suite.Status != domain.StatusFailed {
			continue
		}
		count := 0
		for _, a := range suite.AssertionResults {
			if a.Failed() {
				count++
			}
		}
		out = append(out, SuiteCount{Name: suite.Name, FailedAssertions: count})
	}
	return out
}

// FailedBySuite returns, in document order, every suite containing at
// least one failed assertion, with only the failed assertions. A suite
// whose status is failed but whose assertions all passed (e.g. a setup
// error) does not appear here.
func (s *Summarizer) FailedBySuite() []SuiteFailures {
	var out []SuiteFailures
	for _, suite := range s.rep.TestResults {
		var failed []domain.Assertion
		for _, a := range suite.AssertionResults {
			if a.Failed() {
				failed = append(failed, a)
			}
		}
		if len(failed) > 0 {
			out = append(out, SuiteFailures{Name: suite.Name, Assertions: failed})
		}
	}
	return out
}

// Failures returns a flat record per failed assertion across all suites,
// with the full diagnostic text (all messages joined by newlines).
func (s *Summarizer) Failures() []domain.FailureRecord {
	var out []domain.FailureRecord
	for _, suite := range s.rep.TestResults {
		for _, a := range suite.AssertionResults {
			if !a.Failed() {
				continue
			}
			out = append(out, domain.FailureRecord{
				Suite:    suite.Name,
				FullName: a.FullName,
				Message:  strings.Join(a.FailureMessages, "\n"),
			})
		}
	}
	return out
}

// RecomputeFailedCount counts failed assertions across all suites,
// independently of the report's own numFailedTests counter.
func (s *Summarizer) RecomputeFailedCount() int {
	count := 0
	for _, suite := range s.rep.TestResults {
		for _, a := range suite.AssertionResults {
			if a.Failed() {
				count++
			}
		}
	}
	return count
}

// FindSuite returns the first suite, in document order, whose name
// contains substr. The second return is false when no suite matches.
func (s *Summarizer) FindSuite(substr string) (domain.Suite, bool) {
	for _, suite := range s.rep.TestResults {
		if strings.Contains(suite.Name, substr) {
			return suite, true
		}
	}
	return domain.Suite{}, false
}

// FirstLine returns the first line of a failure message, or the empty
// string when the message is empty.
func FirstLine(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	return line
}
