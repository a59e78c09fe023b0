package domain

import "time"

// ExtractedFile describes one written output file
type ExtractedFile struct {
	TestName string `json:"test_name"`
	Path     string `json:"path"`
	Bytes    int    `json:"bytes"`
	Hash     string `json:"blake3"`
}

// ExtractResult is the outcome of one extraction run
type ExtractResult struct {
	Sources   []string        // Input files that were scanned
	OutputDir string          // Directory the files were written to
	Blocks    int             // Test blocks matched, including skipped ones
	Skipped   []string        // Names of blocks with whitespace-only literals
	Files     []ExtractedFile // One entry per write, in write order
	Duration  time.Duration
}

// ExtractReportMeta contains metadata about an extraction run
type ExtractReportMeta struct {
	Sources         []string `json:"sources"`
	OutputDir       string   `json:"output_dir"`
	Blocks          int      `json:"blocks"`
	Written         int      `json:"written"`
	Skipped         int      `json:"skipped"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	Timestamp       string   `json:"timestamp"`
}

// ExtractReport is the complete JSON report structure
type ExtractReport struct {
	Meta  ExtractReportMeta `json:"meta"`
	Files []ExtractedFile   `json:"files"`
}

// CheckResult compares planned output with the files on disk
type CheckResult struct {
	UpToDate []string // Paths whose content matches
	Stale    []string // Paths whose content differs
	Missing  []string // Paths that do not exist
}

// Clean reports whether every planned file is present and current
func (r CheckResult) Clean() bool {
	return len(r.Stale) == 0 && len(r.Missing) == 0
}
