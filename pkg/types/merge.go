// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pdf-merger pipeline.
package types

// Candidate is a PDF file discovered in the search directory. Candidates are
// ephemeral: they exist for one run and are never persisted.
type Candidate struct {
	// Name is the bare filename, used for pattern matching and sorting.
	Name string `json:"name" yaml:"name"`

	// Path is the full filesystem path used to open the file.
	Path string `json:"path" yaml:"path"`
}

// InputPDF records one successfully merged source file.
type InputPDF struct {
	// Name is the source filename.
	Name string `json:"name" yaml:"name"`

	// Pages is the number of pages the file contributed to the output.
	Pages int `json:"pages" yaml:"pages"`
}

// SkippedPDF records a candidate that failed to parse and was left out of
// the output.
type SkippedPDF struct {
	// Name is the source filename.
	Name string `json:"name" yaml:"name"`

	// Reason is the parse or read error that caused the skip.
	Reason string `json:"reason" yaml:"reason"`
}

// MergeSummary holds the outcome of one merge run.
type MergeSummary struct {
	// Inputs lists the merged source files in output page order.
	Inputs []InputPDF `json:"inputs" yaml:"inputs"`

	// Skipped lists candidates that could not be read or parsed.
	Skipped []SkippedPDF `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// TotalPages is the page count of the merged output.
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// OutputPath is the resolved path of the merged document. The file only
	// exists when Merged() > 0.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// OutputSize is the size of the written output in bytes.
	OutputSize int64 `json:"output_size_bytes" yaml:"output_size_bytes"`
}

// Merged returns the number of source files that made it into the output.
func (s MergeSummary) Merged() int {
	return len(s.Inputs)
}

// HasSkips reports whether any candidate was skipped.
func (s MergeSummary) HasSkips() bool {
	return len(s.Skipped) > 0
}
