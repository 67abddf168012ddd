// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match discovers PDF files whose names match a regex pattern and
// orders them naturally, so lecture2.pdf sorts before lecture10.pdf.
package match

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/WeeeHung/pdf-merger/pkg/types"
)

// Compile builds the case-insensitive filename pattern. An invalid pattern
// is a configuration error the caller treats as fatal.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// FindPDFs scans the immediate entries of dir and returns the regular .pdf
// files whose name contains a match for re, in natural sort order. The
// search is deliberately unanchored: the pattern may match anywhere in the
// filename, so "L\d" matches both "L2.pdf" and "slidesL3.pdf".
func FindPDFs(dir string, re *regexp.Regexp) ([]types.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var matches []types.Candidate
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		if !re.MatchString(name) {
			continue
		}
		matches = append(matches, types.Candidate{
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return NaturalLess(matches[i].Name, matches[j].Name)
	})
	return matches, nil
}

// NaturalLess reports whether a orders before b under natural sort: the
// names split into alternating digit and non-digit runs, digit runs compare
// as integers, non-digit runs compare case-insensitively.
func NaturalLess(a, b string) bool {
	ra, rb := splitRuns(a), splitRuns(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		x, y := ra[i], rb[i]
		xNum, yNum := isDigit(x[0]), isDigit(y[0])
		switch {
		case xNum && yNum:
			if c := compareNumeric(x, y); c != 0 {
				return c < 0
			}
		case xNum != yNum:
			// A digit run orders before a text run, matching byte
			// order of digits against letters.
			return xNum
		default:
			lx, ly := strings.ToLower(x), strings.ToLower(y)
			if lx != ly {
				return lx < ly
			}
		}
	}
	return len(ra) < len(rb)
}

// splitRuns cuts s into maximal runs of digits and non-digits.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[start]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	return runs
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// compareNumeric compares two digit runs by value without converting to
// integers, so arbitrarily long runs cannot overflow. Leading zeros are
// insignificant: "002" equals "2".
func compareNumeric(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}
