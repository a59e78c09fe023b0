package storage

import (
	"cosx/internal/config"
	"cosx/internal/domain"
)

// Sink persists extracted scripts under deterministic file names.
// Writes truncate existing files, so reruns over unchanged input are byte-identical.
type Sink interface {
	// Prepare creates the output directory if it does not exist.
	Prepare() error
	Write(testName, payload string) (domain.ExtractedFile, error)
	Path(testName string) string
	// Compare reports which planned files are missing or differ on disk.
	Compare(planned []domain.PlannedFile) (domain.CheckResult, error)
}

// Storage persists the report of an extraction run.
type Storage interface {
	Save(result *domain.ExtractResult) error
}

// FileSink writes scripts to <output dir>/<test name>.<extension>.
type FileSink struct {
	cfg *config.Config
}

// NewFileSink returns a Sink rooted at the config's output directory.
func NewFileSink(cfg *config.Config) *FileSink {
	return &FileSink{cfg: cfg}
}

// JSONStorage stores the run report in a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that writes the report to path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}
