package storage

import (
	"os"

	"cosx/internal/domain"
)

// Path returns the output file for a test name.
func (s *FileSink) Path(testName string) string {
	return s.cfg.GetOutputPath(testName)
}

// Prepare creates the output directory; an existing directory is not an error.
func (s *FileSink) Prepare() error {
	if err := os.MkdirAll(s.cfg.OutputDir, 0755); err != nil {
		return &domain.OpError{
			Op:   "storage.prepare",
			Kind: domain.KindWrite,
			Path: s.cfg.OutputDir,
			Err:  err,
		}
	}
	return nil
}

// Write creates or truncates the output file for testName.
func (s *FileSink) Write(testName, payload string) (domain.ExtractedFile, error) {
	path := s.Path(testName)
	data := []byte(payload)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.ExtractedFile{}, &domain.OpError{
			Op:   "storage.write",
			Kind: domain.KindWrite,
			Path: path,
			Err:  err,
		}
	}

	return domain.ExtractedFile{
		TestName: testName,
		Path:     path,
		Bytes:    len(data),
		Hash:     HashBytes(data),
	}, nil
}

// Compare checks planned files against what is on disk without writing anything.
// When several planned files share a path the last one is what a run would leave behind.
func (s *FileSink) Compare(planned []domain.PlannedFile) (domain.CheckResult, error) {
	final := make(map[string]string)
	var order []string
	for _, f := range planned {
		if _, ok := final[f.Path]; !ok {
			order = append(order, f.Path)
		}
		final[f.Path] = f.Payload
	}

	var result domain.CheckResult
	for _, path := range order {
		onDisk, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, path)
			continue
		}
		if err != nil {
			return domain.CheckResult{}, &domain.OpError{
				Op:   "storage.compare",
				Kind: domain.KindRead,
				Path: path,
				Err:  err,
			}
		}
		if HashBytes(onDisk) != HashBytes([]byte(final[path])) {
			result.Stale = append(result.Stale, path)
			continue
		}
		result.UpToDate = append(result.UpToDate, path)
	}
	return result, nil
}
