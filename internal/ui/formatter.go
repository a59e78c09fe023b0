package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"cosx/internal/config"
	"cosx/internal/domain"
	"cosx/internal/extract"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	white  = color.New(color.FgWhite)
)

// PrintSummary prints the outcome of an extraction run
func (f *Formatter) PrintSummary(result *domain.ExtractResult) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                     CAOS Script Extraction                    ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Source Files", white, fmt.Sprintf("%d", len(result.Sources)))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Test Blocks", white, fmt.Sprintf("%d", result.Blocks))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Scripts Written", green, fmt.Sprintf("%d", len(result.Files)))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Empty Literals Skipped", yellow, fmt.Sprintf("%d", len(result.Skipped)))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Output Directory", white, result.OutputDir)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Duration", white, fmt.Sprintf("%.3fs", result.Duration.Seconds()))
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if overwritten := len(result.Files) - countDistinctPaths(result.Files); overwritten > 0 {
		yellow.Fprintf(f.out, "! %d script(s) replaced by a later test with the same name\n", overwritten)
	}
	green.Fprintf(f.out, "✓ Extracted %d script(s)\n", len(result.Files))
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

func countDistinctPaths(files []domain.ExtractedFile) int {
	seen := make(map[string]bool)
	for _, file := range files {
		seen[file.Path] = true
	}
	return len(seen)
}

// PrintBlockList prints the planned blocks as a tree grouped by source file
func (f *Formatter) PrintBlockList(plan *extract.Plan) {
	if len(plan.Blocks) == 0 {
		yellow.Fprintln(f.out, "No test blocks found")
		return
	}

	green.Fprintf(f.out, "Found %d test block(s) in %d source file(s):\n\n", len(plan.Blocks), len(plan.Sources))

	bySource := make(map[string][]domain.TestBlock)
	for _, block := range plan.Blocks {
		bySource[block.Source] = append(bySource[block.Source], block)
	}

	var sources []string
	for _, source := range plan.Sources {
		if len(bySource[source]) > 0 {
			sources = append(sources, source)
		}
	}

	for i, source := range sources {
		isLastFile := i == len(sources)-1
		if isLastFile {
			cyan.Fprintf(f.out, "└── %s\n", source)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", source)
		}

		blocks := bySource[source]
		for j, block := range blocks {
			isLastBlock := j == len(blocks)-1

			var prefix string
			switch {
			case isLastFile && isLastBlock:
				prefix = "    └── "
			case isLastFile:
				prefix = "    ├── "
			case isLastBlock:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}

			line := yellow.Sprint(block.Name) + fmt.Sprintf(":%d", block.Line)
			if block.Indirect {
				line += " " + cyan.Sprint("[indirect]")
			}
			if block.Empty() {
				line += " " + red.Sprint("(empty literal, skipped)")
			} else {
				line += " → " + f.config.GetOutputPath(block.Name)
			}
			fmt.Fprintf(f.out, "%s%s\n", prefix, line)
		}

		// Add spacing between files (except for the last one)
		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}
}

// ListedBlock is the machine-readable form of a test block
type ListedBlock struct {
	Name     string `json:"name" yaml:"name"`
	Source   string `json:"source" yaml:"source"`
	Line     int    `json:"line" yaml:"line"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
	Indirect bool   `json:"indirect,omitempty" yaml:"indirect,omitempty"`
	Skipped  bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Script   string `json:"script,omitempty" yaml:"script,omitempty"`
}

// ListedBlocks converts a plan into listing entries; skipped blocks are only included when all is set
func ListedBlocks(plan *extract.Plan, cfg *config.Config, all bool) []ListedBlock {
	type blockKey struct {
		source string
		offset int
	}
	payloads := make(map[blockKey]string)
	for _, file := range plan.Files {
		payloads[blockKey{file.Block.Source, file.Block.Offset}] = file.Payload
	}

	listed := make([]ListedBlock, 0, len(plan.Blocks))
	for _, block := range plan.Blocks {
		entry := ListedBlock{
			Name:     block.Name,
			Source:   block.Source,
			Line:     block.Line,
			Indirect: block.Indirect,
		}
		if block.Empty() {
			if !all {
				continue
			}
			entry.Skipped = true
		} else {
			entry.Output = cfg.GetOutputPath(block.Name)
			entry.Script = payloads[blockKey{block.Source, block.Offset}]
		}
		listed = append(listed, entry)
	}
	return listed
}

// WriteBlocks encodes the plan as json or yaml
func (f *Formatter) WriteBlocks(plan *extract.Plan, format string, all bool) error {
	listed := ListedBlocks(plan, f.config, all)

	switch format {
	case "json":
		enc := json.NewEncoder(f.out)
		enc.SetIndent("", "  ")
		return enc.Encode(listed)
	case "yaml":
		enc := yaml.NewEncoder(f.out)
		enc.SetIndent(2)
		if err := enc.Encode(listed); err != nil {
			return err
		}
		return enc.Close()
	default:
		return &domain.OpError{
			Op:   "ui.write_blocks",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown format %q (want text, json or yaml)", format),
		}
	}
}

// PrintCheck prints files that are missing or out of date
func (f *Formatter) PrintCheck(result domain.CheckResult) {
	for _, path := range result.Missing {
		red.Fprintf(f.out, "missing  %s\n", path)
	}
	for _, path := range result.Stale {
		yellow.Fprintf(f.out, "stale    %s\n", path)
	}

	if result.Clean() {
		green.Fprintf(f.out, "✓ %d script(s) up to date\n", len(result.UpToDate))
		return
	}
	red.Fprintf(f.out, "✗ %d missing, %d stale, %d up to date\n", len(result.Missing), len(result.Stale), len(result.UpToDate))
}
