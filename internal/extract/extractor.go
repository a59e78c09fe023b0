// Package extract turns the script literals embedded in C++ tests into
// standalone script files.
package extract

import (
	"time"

	"cosx/internal/config"
	"cosx/internal/discovery"
	"cosx/internal/domain"
	"cosx/internal/logger"
	"cosx/internal/storage"
)

// Progress receives updates while planned files are written
type Progress interface {
	Update(done, written, skipped int)
	Finish()
}

// Plan is everything a run would write, computed without touching the output directory
type Plan struct {
	Sources []string
	Blocks  []domain.TestBlock   // All matched blocks, in processing order
	Files   []domain.PlannedFile // Blocks with a non-empty payload, in processing order
	Skipped []domain.TestBlock   // Blocks whose literal is empty or whitespace-only
}

// Extractor reads test sources and writes one script file per test block
type Extractor struct {
	config   *config.Config
	scanner  *discovery.Scanner
	parser   *discovery.Parser
	filter   *discovery.Filter
	sink     storage.Sink
	progress Progress
}

// NewExtractor creates a new Extractor
func NewExtractor(
	cfg *config.Config,
	scanner *discovery.Scanner,
	parser *discovery.Parser,
	filter *discovery.Filter,
	sink storage.Sink,
) *Extractor {
	return &Extractor{
		config:  cfg,
		scanner: scanner,
		parser:  parser,
		filter:  filter,
		sink:    sink,
	}
}

// SetProgress sets the progress reporter used by Apply
func (e *Extractor) SetProgress(progress Progress) {
	e.progress = progress
}

// Plan reads every source and computes the files a run would write.
// All sources are read before anything is written, so an unreadable input
// fails the run before the output directory is created.
func (e *Extractor) Plan() (*Plan, error) {
	sources, err := e.scanner.Scan(e.config.InputPath)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Sources: sources}
	for _, source := range sources {
		blocks, err := e.parser.ParseFile(source)
		if err != nil {
			return nil, err
		}
		plan.Blocks = append(plan.Blocks, blocks...)
	}
	plan.Blocks = e.filter.FilterByName(plan.Blocks, e.config.Flags.NameFilter)

	for _, block := range plan.Blocks {
		logger.L().Debug("extract.block",
			"test", block.Name,
			"source", block.Source,
			"offset", block.Offset,
			"indirect", block.Indirect,
		)
		if block.Empty() {
			plan.Skipped = append(plan.Skipped, block)
			continue
		}
		plan.Files = append(plan.Files, domain.PlannedFile{
			Block:   block,
			Path:    e.sink.Path(block.Name),
			Payload: Normalize(block.Raw),
		})
	}

	return plan, nil
}

// Apply writes every planned file in order; a later file with the same name replaces an earlier one.
func (e *Extractor) Apply(plan *Plan) (*domain.ExtractResult, error) {
	start := time.Now()
	result := &domain.ExtractResult{
		Sources:   plan.Sources,
		OutputDir: e.config.OutputDir,
		Blocks:    len(plan.Blocks),
	}
	for _, block := range plan.Skipped {
		logger.L().Debug("extract.skip", "test", block.Name, "reason", "empty literal")
		result.Skipped = append(result.Skipped, block.Name)
	}

	if err := e.sink.Prepare(); err != nil {
		return nil, err
	}

	for i, planned := range plan.Files {
		file, err := e.sink.Write(planned.Block.Name, planned.Payload)
		if err != nil {
			return nil, err
		}
		logger.L().Debug("extract.write", "test", file.TestName, "path", file.Path, "bytes", file.Bytes)
		result.Files = append(result.Files, file)

		if e.progress != nil {
			e.progress.Update(i+1, len(result.Files), len(result.Skipped))
		}
	}
	if e.progress != nil {
		e.progress.Finish()
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Run plans and applies an extraction
func (e *Extractor) Run() (*domain.ExtractResult, error) {
	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}
	return e.Apply(plan)
}

// Check compares the planned files with the output directory without writing
func (e *Extractor) Check() (*Plan, domain.CheckResult, error) {
	plan, err := e.Plan()
	if err != nil {
		return nil, domain.CheckResult{}, err
	}
	result, err := e.sink.Compare(plan.Files)
	return plan, result, err
}
