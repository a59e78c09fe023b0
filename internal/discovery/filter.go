package discovery

import (
	"path/filepath"
	"strings"

	"cosx/internal/domain"
)

// Filter filters test blocks by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps blocks whose test name matches pattern.
// Supports wildcards like "agent_*" or "*lexing*"; a pattern without
// wildcards matches any name containing it.
func (f *Filter) FilterByName(blocks []domain.TestBlock, pattern string) []domain.TestBlock {
	if pattern == "" {
		return blocks
	}

	var filtered []domain.TestBlock
	for _, block := range blocks {
		if MatchName(block.Name, pattern) {
			filtered = append(filtered, block)
		}
	}
	return filtered
}

// MatchName reports whether a test name matches a filter pattern
func MatchName(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to an ordered substring match for patterns like "*agent*"
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		hasPart = true
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return hasPart
}
