// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WeeeHung/pdf-merger/pkg/types"
)

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	summary := types.MergeSummary{
		Inputs: []types.InputPDF{
			{Name: "L1.pdf", Pages: 2},
			{Name: "L2.pdf", Pages: 3},
		},
		Skipped:    []types.SkippedPDF{{Name: "bad.pdf", Reason: "no header"}},
		TotalPages: 5,
		OutputPath: "/tmp/out/merged.pdf",
		OutputSize: 4096,
	}

	require.NoError(t, Write(path, `L\d`, "/tmp/slides", summary))

	got, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, `L\d`, got.Pattern)
	assert.Equal(t, "/tmp/slides", got.Directory)
	assert.Equal(t, "/tmp/out/merged.pdf", got.Output)
	assert.Equal(t, summary.Inputs, got.Inputs)
	assert.Equal(t, summary.Skipped, got.Skipped)
	assert.Equal(t, 2, got.Summary.Merged)
	assert.Equal(t, 1, got.Summary.Skipped)
	assert.Equal(t, 5, got.Summary.TotalPages)
	assert.Equal(t, int64(4096), got.Summary.OutputSize)
	assert.False(t, got.Summary.Timestamp.IsZero())
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading report")
}

func TestWriteUnwritablePath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "no-such-dir", "r.yaml"), ".", ".", types.MergeSummary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing report")
}
