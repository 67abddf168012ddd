// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML record of a merge run: the pattern and
// directory searched, the merged inputs with page counts, skipped files,
// and output totals.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/WeeeHung/pdf-merger/pkg/types"
)

// MergeReport is the on-disk representation of one merge run.
type MergeReport struct {
	Pattern   string             `yaml:"pattern"`
	Directory string             `yaml:"directory"`
	Output    string             `yaml:"output"`
	Inputs    []types.InputPDF   `yaml:"inputs"`
	Skipped   []types.SkippedPDF `yaml:"skipped,omitempty"`
	Summary   RunSummary         `yaml:"summary"`
}

// RunSummary stores merge totals and a timestamp.
type RunSummary struct {
	Merged     int       `yaml:"merged"`
	Skipped    int       `yaml:"skipped"`
	TotalPages int       `yaml:"total_pages"`
	OutputSize int64     `yaml:"output_size_bytes"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// Write saves the outcome of a merge run to a YAML file at path.
func Write(path, pattern, dir string, s types.MergeSummary) error {
	r := MergeReport{
		Pattern:   pattern,
		Directory: dir,
		Output:    s.OutputPath,
		Inputs:    s.Inputs,
		Skipped:   s.Skipped,
		Summary: RunSummary{
			Merged:     s.Merged(),
			Skipped:    len(s.Skipped),
			TotalPages: s.TotalPages,
			OutputSize: s.OutputSize,
			Timestamp:  time.Now(),
		},
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a merge report from path. Used by tests and tooling that
// inspect past runs.
func Read(path string) (MergeReport, error) {
	var r MergeReport
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("reading report %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return r, nil
}
