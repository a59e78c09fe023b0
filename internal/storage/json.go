package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cosx/internal/domain"
)

// Save writes a report of the extraction run to the configured JSON file.
func (s *JSONStorage) Save(result *domain.ExtractResult) error {
	files := result.Files
	if files == nil {
		files = []domain.ExtractedFile{}
	}

	report := domain.ExtractReport{
		Meta: domain.ExtractReportMeta{
			Sources:         result.Sources,
			OutputDir:       result.OutputDir,
			Blocks:          result.Blocks,
			Written:         len(result.Files),
			Skipped:         len(result.Skipped),
			Duration:        result.Duration.String(),
			DurationSeconds: result.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Files: files,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
