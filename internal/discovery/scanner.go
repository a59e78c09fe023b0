package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"cosx/internal/domain"
)

// Scanner resolves the input path to the source files to parse
type Scanner struct {
	suffix   string
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner that picks files ending in suffix and skips the given directories
func NewScanner(suffix string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{suffix: suffix, skipDirs: skipMap}
}

// Scan returns root itself when it is a file, otherwise every matching source below it in lexical order
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		kind := domain.KindRead
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "discovery.scan",
			Kind: kind,
			Path: root,
			Err:  err,
		}
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var sources []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), s.suffix) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "discovery.scan",
			Kind: domain.KindRead,
			Path: root,
			Err:  err,
		}
	}

	return sources, nil
}
