package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"vrs/internal/config"
	"vrs/internal/domain"
	"vrs/internal/report"
)

// Formatter formats and displays report summaries
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    os.Stdout,
	}
}

// PrintTotals prints the top-level counters on a single line, followed by
// a pass/fail notice.
func (f *Formatter) PrintTotals(rep *domain.Report) {
	fmt.Fprintf(f.out, "total=%d passed=%d failed=%d failedSuites=%d\n",
		rep.NumTotalTests, rep.NumPassedTests, rep.NumFailedTests, rep.NumFailedTestSuites)

	if rep.NumFailedTests == 0 && rep.NumFailedTestSuites == 0 {
		color.New(color.FgGreen).Fprintln(f.out, "✓ All tests passed!")
	} else {
		color.New(color.FgRed).Fprintf(f.out, "✗ %d test(s) failed in %d suite(s)\n",
			rep.NumFailedTests, rep.NumFailedTestSuites)
	}
}

// PrintFailingSuites prints one line per failed suite with its
// failed-assertion count.
func (f *Formatter) PrintFailingSuites(suites []report.SuiteCount) {
	for _, s := range suites {
		color.New(color.FgCyan).Fprint(f.out, s.Name)
		fmt.Fprintf(f.out, " :: %d\n", s.FailedAssertions)
	}
}

// PrintFailureDetails prints, for each suite with at least one failed
// assertion, the suite name followed by each failed assertion's full name
// and the first line of its first failure message (empty when none).
func (f *Formatter) PrintFailureDetails(suites []report.SuiteFailures) {
	if len(suites) == 0 {
		color.New(color.FgGreen).Fprintln(f.out, "✓ No test failures found!")
		return
	}

	for _, s := range suites {
		fmt.Fprintln(f.out)
		color.New(color.FgCyan).Fprintln(f.out, s.Name)
		for _, a := range s.Assertions {
			msg := ""
			if len(a.FailureMessages) > 0 {
				msg = report.FirstLine(a.FailureMessages[0])
			}
			color.New(color.FgRed).Fprintf(f.out, "- %s\n", a.FullName)
			fmt.Fprintf(f.out, "  %s\n", msg)
		}
	}
}

// PrintCheck prints the counter tables, the independently recomputed
// failure count, an optional named-suite status lookup, and the flat
// failures list.
func (f *Formatter) PrintCheck(rep *domain.Report, sum *report.Summarizer, suiteFilter string) {
	fmt.Fprintf(f.out, "TOTAL SUITES %d PASS %d FAIL %d SKIPPED %d\n",
		rep.NumTotalTestSuites, rep.NumPassedTestSuites, rep.NumFailedTestSuites, rep.NumPendingTestSuites)
	fmt.Fprintf(f.out, "TOTAL TESTS %d PASS %d FAIL %d SKIPPED %d\n",
		rep.NumTotalTests, rep.NumPassedTests, rep.NumFailedTests, rep.NumPendingTests)

	failures := sum.Failures()
	fmt.Fprintf(f.out, "FAILURE COUNT %d\n", len(failures))

	if suiteFilter != "" {
		fmt.Fprintln(f.out, "SUITE STATUS:")
		if suite, ok := sum.FindSuite(suiteFilter); ok {
			fmt.Fprintf(f.out, "  %s %s\n", suite.Name, suite.Status)
		}
	}

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "FAILURES:")
	for _, failure := range failures {
		firstLine := report.FirstLine(failure.Message)
		if failure.Message == "" {
			firstLine = "No message"
		}
		fmt.Fprintf(f.out, "- %s: %s\n", failure.FullName, firstLine)
	}
}
