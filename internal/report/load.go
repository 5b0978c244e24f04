package report

import (
	"encoding/json"
	"fmt"
	"os"

	"vrs/internal/domain"
	"vrs/internal/textenc"
)

// Required top-level fields. The counters come straight from the test
// runner; a report without them is not a vitest JSON report.
var requiredFields = []string{
	"numTotalTestSuites",
	"numPassedTestSuites",
	"numFailedTestSuites",
	"numPendingTestSuites",
	"numTotalTests",
	"numPassedTests",
	"numFailedTests",
	"numPendingTests",
	"testResults",
}

var requiredSuiteFields = []string{"name", "status", "assertionResults"}

// Load reads and parses the report file at path using the named text
// encoding. A missing file surfaces the os error (errors.Is with
// fs.ErrNotExist holds); encoding or JSON problems return *DecodeError;
// a missing required field returns *SchemaError.
func Load(path, encoding string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}

	text, err := textenc.Decode(encoding, data)
	if err != nil {
		return nil, &DecodeError{Encoding: encoding, Err: err}
	}
	raw := []byte(text)

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, &DecodeError{Encoding: encoding, Err: err}
	}
	for _, field := range requiredFields {
		if _, ok := top[field]; !ok {
			return nil, &SchemaError{Field: field}
		}
	}

	var suites []map[string]json.RawMessage
	if err := json.Unmarshal(top["testResults"], &suites); err != nil {
		return nil, &DecodeError{Encoding: encoding, Err: err}
	}
	for i, suite := range suites {
		for _, field := range requiredSuiteFields {
			if _, ok := suite[field]; !ok {
				return nil, &SchemaError{Field: fmt.Sprintf("testResults[%d].%s", i, field)}
			}
		}
	}

	var rep domain.Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, &DecodeError{Encoding: encoding, Err: err}
	}
	return &rep, nil
}
