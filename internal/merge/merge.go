// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates matched PDF files into a single output
// document. Structural PDF work (parsing, page trees, serialization) is
// delegated to pdfcpu; this package owns the per-file skip behavior and the
// final write.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/WeeeHung/pdf-merger/pkg/types"
)

// configuration returns the pdfcpu settings used for every operation.
// Relaxed validation keeps slightly out-of-spec files mergeable.
func configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Files appends the pages of each candidate, in the given order, into a
// single PDF at outPath, printing progress to w. Candidates that fail to
// parse are skipped with a warning; partial success is acceptable. An empty
// candidate list, or one where every file was skipped, writes nothing and is
// not an error. A failure serializing the final document is.
func Files(candidates []types.Candidate, outPath string, w io.Writer) (types.MergeSummary, error) {
	summary := types.MergeSummary{OutputPath: outPath}

	if len(candidates) == 0 {
		fmt.Fprintln(w, "No PDF files found matching the pattern.")
		return summary, nil
	}

	fmt.Fprintf(w, "\nFound %d PDF file(s) to merge:\n", len(candidates))
	for i, c := range candidates {
		fmt.Fprintf(w, "  %d. %s\n", i+1, c.Name)
	}
	fmt.Fprintf(w, "\nMerging PDFs into: %s\n", filepath.Base(outPath))

	conf := configuration()
	var usable []string
	for _, c := range candidates {
		fmt.Fprintf(w, "  Processing: %s\n", c.Name)

		pages, err := readable(c.Path, conf)
		if err != nil {
			fmt.Fprintf(w, "  Warning: failed to process %s: %v\n", c.Name, err)
			summary.Skipped = append(summary.Skipped, types.SkippedPDF{Name: c.Name, Reason: err.Error()})
			continue
		}

		usable = append(usable, c.Path)
		summary.Inputs = append(summary.Inputs, types.InputPDF{Name: c.Name, Pages: pages})
		summary.TotalPages += pages
	}

	if len(usable) == 0 {
		fmt.Fprintln(w, "No readable PDF files to merge; nothing written.")
		return summary, nil
	}

	if err := writeMerged(usable, outPath, conf); err != nil {
		return summary, fmt.Errorf("writing %s: %w", outPath, err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return summary, fmt.Errorf("stat output %s: %w", outPath, err)
	}
	summary.OutputSize = info.Size()

	fmt.Fprintf(w, "\nMerged %d PDF(s) into: %s\n", len(usable), outPath)
	fmt.Fprintf(w, "  Output size: %.2f MB\n", float64(info.Size())/(1024*1024))
	return summary, nil
}

// readable checks that the file parses as a PDF and returns its page count.
func readable(path string, conf *model.Configuration) (int, error) {
	if err := api.ValidateFile(path, conf); err != nil {
		return 0, err
	}
	return api.PageCountFile(path)
}

// writeMerged serializes the merged document. pdfcpu's merge wants at least
// two inputs; a single usable file is byte-copied so its pages survive
// unchanged.
func writeMerged(paths []string, outPath string, conf *model.Configuration) error {
	if len(paths) == 1 {
		return copyFile(paths[0], outPath)
	}
	return api.MergeCreateFile(paths, outPath, false, conf)
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
