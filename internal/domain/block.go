package domain

import "strings"

// ClosingStyle selects how the end of a raw string literal is recognized
type ClosingStyle string

const (
	// ClosingBare ends a literal at )"
	ClosingBare ClosingStyle = "bare"
	// ClosingParen ends a literal at )") as in EXPECT_CAOS(R"(...)")
	ClosingParen ClosingStyle = "paren"
)

// Valid reports whether s is a known closing style
func (s ClosingStyle) Valid() bool {
	return s == ClosingBare || s == ClosingParen
}

// TestBlock represents a test declaration together with its embedded script literal
type TestBlock struct {
	Name     string // Test identifier from TEST(suite, name)
	Raw      string // Literal body between the delimiters
	Source   string // File the block was found in
	Offset   int    // Byte offset of the declaration in Source
	Line     int    // 1-based line of the declaration
	Indirect bool   // Literal was taken from a <name>_script assignment
}

// Empty reports whether the literal body holds only whitespace
func (b TestBlock) Empty() bool {
	return strings.TrimSpace(b.Raw) == ""
}

// PlannedFile is a normalized payload paired with the file it will be written to
type PlannedFile struct {
	Block   TestBlock
	Path    string
	Payload string
}
