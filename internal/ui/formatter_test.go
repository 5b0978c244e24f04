package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"vrs/internal/config"
	"vrs/internal/domain"
	"vrs/internal/report"
)

func testFormatter() (*Formatter, *bytes.Buffer) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	f := NewFormatter(config.New())
	f.out = buf
	return f, buf
}

func testReport() *domain.Report {
	return &domain.Report{
		NumTotalTestSuites:   2,
		NumPassedTestSuites:  1,
		NumFailedTestSuites:  1,
		NumPendingTestSuites: 0,
		NumTotalTests:        12,
		NumPassedTests:       9,
		NumFailedTests:       3,
		NumPendingTests:      0,
		TestResults: []domain.Suite{
			{
				Name:   "src/auth/login.test.ts",
				Status: domain.StatusFailed,
				AssertionResults: []domain.Assertion{
					{FullName: "login rejects bad password", Status: domain.StatusFailed, FailureMessages: []string{"expected 401, got 200\n  at login.test.ts:14"}},
					{FullName: "login locks after retries", Status: domain.StatusFailed},
				},
			},
			{
				Name:   "src/util/format.test.ts",
				Status: domain.StatusPassed,
				AssertionResults: []domain.Assertion{
					{FullName: "format pads numbers", Status: domain.StatusPassed},
				},
			},
		},
	}
}

func TestFormatter_PrintTotals(t *testing.T) {
	f, buf := testFormatter()

	f.PrintTotals(testReport())

	out := buf.String()
	if !strings.Contains(out, "total=12") {
		t.Errorf("output missing total=12: %q", out)
	}
	if !strings.Contains(out, "failed=3") {
		t.Errorf("output missing failed=3: %q", out)
	}
	if !strings.Contains(out, "passed=9") {
		t.Errorf("output missing passed=9: %q", out)
	}
	if !strings.Contains(out, "failedSuites=1") {
		t.Errorf("output missing failedSuites=1: %q", out)
	}
}

func TestFormatter_PrintTotals_AllPassed(t *testing.T) {
	f, buf := testFormatter()

	rep := testReport()
	rep.NumFailedTests = 0
	rep.NumFailedTestSuites = 0
	f.PrintTotals(rep)

	if !strings.Contains(buf.String(), "All tests passed") {
		t.Errorf("expected pass notice, got %q", buf.String())
	}
}

func TestFormatter_PrintFailingSuites(t *testing.T) {
	f, buf := testFormatter()

	sum := report.NewSummarizer(testReport())
	f.PrintFailingSuites(sum.FailingSuites())

	if !strings.Contains(buf.String(), "src/auth/login.test.ts :: 2") {
		t.Errorf("expected suite line with count, got %q", buf.String())
	}
}

func TestFormatter_PrintFailureDetails(t *testing.T) {
	f, buf := testFormatter()

	sum := report.NewSummarizer(testReport())
	f.PrintFailureDetails(sum.FailedBySuite())

	out := buf.String()
	if !strings.Contains(out, "src/auth/login.test.ts") {
		t.Errorf("output missing failing suite name: %q", out)
	}
	if !strings.Contains(out, "- login rejects bad password") {
		t.Errorf("output missing failed assertion: %q", out)
	}
	if !strings.Contains(out, "expected 401, got 200") {
		t.Errorf("output missing first message line: %q", out)
	}
	// Only the first line of the message is surfaced
	if strings.Contains(out, "at login.test.ts:14") {
		t.Errorf("output should not contain later message lines: %q", out)
	}
	// A suite with zero failed assertions never appears
	if strings.Contains(out, "src/util/format.test.ts") {
		t.Errorf("output should not contain clean suite: %q", out)
	}
}

func TestFormatter_PrintFailureDetails_NoFailures(t *testing.T) {
	f, buf := testFormatter()

	f.PrintFailureDetails(nil)

	if !strings.Contains(buf.String(), "No test failures found") {
		t.Errorf("expected no-failures notice, got %q", buf.String())
	}
}

func TestFormatter_PrintCheck(t *testing.T) {
	f, buf := testFormatter()

	rep := testReport()
	f.PrintCheck(rep, report.NewSummarizer(rep), "")

	out := buf.String()
	if !strings.Contains(out, "TOTAL SUITES 2 PASS 1 FAIL 1 SKIPPED 0") {
		t.Errorf("output missing suite counters: %q", out)
	}
	if !strings.Contains(out, "TOTAL TESTS 12 PASS 9 FAIL 3 SKIPPED 0") {
		t.Errorf("output missing test counters: %q", out)
	}
	if !strings.Contains(out, "FAILURE COUNT 2") {
		t.Errorf("output missing recomputed failure count: %q", out)
	}
	if !strings.Contains(out, "- login locks after retries: No message") {
		t.Errorf("output missing placeholder for empty message: %q", out)
	}
	if !strings.Contains(out, "- login rejects bad password: expected 401, got 200") {
		t.Errorf("output missing failure line: %q", out)
	}
}

func TestFormatter_PrintCheck_SuiteLookup(t *testing.T) {
	t.Run("match reports status", func(t *testing.T) {
		f, buf := testFormatter()
		rep := testReport()

		f.PrintCheck(rep, report.NewSummarizer(rep), "format.test.ts")

		if !strings.Contains(buf.String(), "src/util/format.test.ts passed") {
			t.Errorf("expected suite status line, got %q", buf.String())
		}
	})

	t.Run("no match reports nothing", func(t *testing.T) {
		f, buf := testFormatter()
		rep := testReport()

		f.PrintCheck(rep, report.NewSummarizer(rep), "does-not-exist")

		out := buf.String()
		if !strings.Contains(out, "SUITE STATUS:") {
			t.Errorf("expected lookup header, got %q", out)
		}
		if strings.Contains(out, "does-not-exist") {
			t.Errorf("expected no status line for missing suite: %q", out)
		}
	})
}
