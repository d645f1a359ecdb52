package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdwidth/pkg/runner"
	"github.com/yaklabco/mdwidth/pkg/width"
)

// jsonSchemaVersion is the version of the JSON output layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string            `json:"path"`
	Violations []width.Violation `json:"violations"`
	Inherent   int               `json:"inherent"`
	Error      string            `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked        int `json:"filesChecked"`
	FilesWithViolations int `json:"filesWithViolations"`
	FilesErrored        int `json:"filesErrored"`
	TotalViolations     int `json:"totalViolations"`
	InherentExceptions  int `json:"inherentExceptions"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalViolations, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       file.DisplayPath,
			Violations: make([]width.Violation, 0, len(file.Result.Violations)),
			Inherent:   file.Result.Inherent,
		}
		fileResult.Violations = append(fileResult.Violations, file.Result.Violations...)

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesChecked:        result.Stats.FilesChecked,
		FilesWithViolations: result.Stats.FilesWithViolations,
		FilesErrored:        result.Stats.FilesErrored,
		TotalViolations:     result.Stats.Violations,
		InherentExceptions:  result.Stats.Inherent,
	}

	return output
}
