// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-merger CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/WeeeHung/pdf-merger/internal/match"
	"github.com/WeeeHung/pdf-merger/internal/merge"
	"github.com/WeeeHung/pdf-merger/internal/report"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the pdf-merger command itself; merging is the only operation,
// so it runs directly on the root.
var rootCmd = &cobra.Command{
	Use:   "pdf-merger",
	Short: "Merge PDF files whose names match a regex pattern",
	Long: `pdf-merger discovers PDF files in a directory whose filenames match a
regular expression, orders them naturally (lecture2.pdf before
lecture10.pdf), and concatenates their pages into a single output PDF.

The pattern is matched case-insensitively anywhere in the filename. Files
that fail to parse are skipped with a warning; the remaining files are
still merged.`,
	Example: `  # Merge all files starting with "L" followed by a digit
  pdf-merger -p 'L\d.*\.pdf' -o merged_lectures.pdf

  # Merge every PDF in ~/slides, writing a YAML report
  pdf-merger -p '.*\.pdf' -o all_slides.pdf -d ~/slides --report merge.yaml

  # Preview the merge order without writing anything
  pdf-merger -p 'chapter' -o book.pdf --dry-run`,
	SilenceUsage: true,
	RunE:         runMerge,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-merger.yaml or ~/.config/pdf-merger/config.yaml)")

	rootCmd.Flags().StringP("pattern", "p", "", "regex pattern to match PDF filenames")
	rootCmd.Flags().StringP("output", "o", "", "output filename for the merged PDF (.pdf suffix enforced)")
	rootCmd.Flags().StringP("directory", "d", "", "directory to search for PDF files (default: current directory)")
	rootCmd.Flags().String("report", "", "write a YAML merge report to this path")
	rootCmd.Flags().Bool("dry-run", false, "list matched files in merge order without merging")

	_ = rootCmd.MarkFlagRequired("pattern")
	_ = rootCmd.MarkFlagRequired("output")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-merger")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-merger"))
		}
	}

	viper.SetDefault("directory", ".")
	viper.SetEnvPrefix("PDF_MERGER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runMerge(cmd *cobra.Command, args []string) error {
	pattern, _ := cmd.Flags().GetString("pattern")
	output, _ := cmd.Flags().GetString("output")
	dir, _ := cmd.Flags().GetString("directory")
	if dir == "" {
		dir = viper.GetString("directory")
	}

	re, err := match.Compile(pattern)
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving directory %s: %w", dir, err)
	}
	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %s does not exist or is not a directory", absDir)
	}

	outPath := normalizeOutput(output, absDir)

	fmt.Printf("Searching for PDFs matching pattern: %s\n", pattern)
	fmt.Printf("Directory: %s\n", absDir)

	candidates, err := match.FindPDFs(absDir, re)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		if len(candidates) == 0 {
			fmt.Println("No PDF files found matching the pattern.")
			return nil
		}
		fmt.Printf("\nWould merge %d PDF file(s) into %s:\n", len(candidates), outPath)
		for i, c := range candidates {
			fmt.Printf("  %d. %s\n", i+1, c.Name)
		}
		return nil
	}

	summary, err := merge.Files(candidates, outPath, os.Stdout)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := report.Write(reportPath, pattern, absDir, summary); err != nil {
			return err
		}
		fmt.Printf("Report written to: %s\n", reportPath)
	}
	return nil
}

// normalizeOutput forces a .pdf extension, replacing any existing extension,
// and places relative outputs inside the search directory.
func normalizeOutput(out, dir string) string {
	ext := filepath.Ext(out)
	if !strings.EqualFold(ext, ".pdf") {
		base := strings.TrimSuffix(out, ext)
		if base == "" {
			// A name like ".profile" has no stem to replace.
			base = out
		}
		out = base + ".pdf"
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
