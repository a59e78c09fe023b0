package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosx/internal/domain"
)

const caosTestSource = `#include "CaosTest.h"

TEST(caos, simple) {
    run_script(R"(
        outv 1
        outs "hi"
    )");
}

TEST(caos, blank) {
    run_script(R"(
      )");
}

TEST(caos, no_literal) {
    EXPECT_EQ(1, 1);
}

TEST(lexer, other_suite) {
    run_script(R"(outv 2)");
}

TEST(caos,   spaced) { run_script(R"(inst
  slow)"); }
`

func defaultParser() *Parser {
	return NewParser(ParserOptions{
		Suite:          "caos",
		Closing:        domain.ClosingBare,
		IndirectTests:  []string{"special_lexing"},
		IndirectSuffix: "_script",
	})
}

func names(blocks []domain.TestBlock) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Name)
	}
	return out
}

func TestParser_Parse(t *testing.T) {
	blocks := defaultParser().Parse("CaosTest.cpp", caosTestSource)

	require.Equal(t, []string{"simple", "blank", "spaced"}, names(blocks))

	assert.Equal(t, "\n        outv 1\n        outs \"hi\"\n    ", blocks[0].Raw)
	assert.Equal(t, "\n      ", blocks[1].Raw)
	assert.True(t, blocks[1].Empty())
	assert.Equal(t, "inst\n  slow", blocks[2].Raw)

	for _, b := range blocks {
		assert.Equal(t, "CaosTest.cpp", b.Source)
		assert.False(t, b.Indirect)
	}
	assert.Equal(t, []int{3, 10, 23}, []int{blocks[0].Line, blocks[1].Line, blocks[2].Line})
	assert.Less(t, blocks[0].Offset, blocks[1].Offset)
	assert.Less(t, blocks[1].Offset, blocks[2].Offset)
}

func TestParser_BlockMustNotCloseBeforeLiteral(t *testing.T) {
	src := `TEST(caos, empty_body) {
}
TEST(caos, next) { run(R"(outv 3)"); }
`
	blocks := defaultParser().Parse("x.cpp", src)

	// empty_body closes before any literal, so only next matches
	require.Equal(t, []string{"next"}, names(blocks))
	assert.Equal(t, "outv 3", blocks[0].Raw)
}

func TestParser_LiteralMayContainBraces(t *testing.T) {
	src := `TEST(caos, braces) { run(R"(doif 1 = 1 {weird} endi)"); }`
	blocks := defaultParser().Parse("x.cpp", src)

	require.Len(t, blocks, 1)
	assert.Equal(t, "doif 1 = 1 {weird} endi", blocks[0].Raw)
}

func TestParser_DuplicateNamesKeepOrder(t *testing.T) {
	src := `TEST(caos, dup) { run(R"(first)"); }
TEST(caos, dup) { run(R"(second)"); }
`
	blocks := defaultParser().Parse("x.cpp", src)

	require.Len(t, blocks, 2)
	assert.Equal(t, "first", blocks[0].Raw)
	assert.Equal(t, "second", blocks[1].Raw)
}

func TestParser_ClosingStyles(t *testing.T) {
	src := `TEST(caos, quoted) {
    run(R"(outs ")" ")");
}
`
	tests := []struct {
		name     string
		closing  domain.ClosingStyle
		expected string
	}{
		{name: "bare stops at first closing quote", closing: domain.ClosingBare, expected: `outs "`},
		{name: "paren needs a trailing parenthesis", closing: domain.ClosingParen, expected: `outs ")" "`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(ParserOptions{Suite: "caos", Closing: tt.closing})
			blocks := p.Parse("x.cpp", src)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.expected, blocks[0].Raw)
		})
	}
}

func TestParser_IndirectLiteral(t *testing.T) {
	src := `static const char *special_lexing_script = R"(
    setv va00 1
    outv va00
)";

TEST(caos, before) { run(R"(outv 0)"); }

TEST(caos, special_lexing) {
    run_script(special_lexing_script);
}

TEST(caos, after) { run(R"(outv 9)"); }
`

	t.Run("declaration without inline literal uses the assignment", func(t *testing.T) {
		blocks := defaultParser().Parse("x.cpp", src)

		require.Equal(t, []string{"before", "special_lexing", "after"}, names(blocks))
		assert.True(t, blocks[1].Indirect)
		assert.Equal(t, "\n    setv va00 1\n    outv va00\n", blocks[1].Raw)
	})

	t.Run("assignment overrides an inline literal", func(t *testing.T) {
		inline := src + "TEST(caos, special_lexing) { run(R\"(inline)\"); }\n"
		blocks := defaultParser().Parse("x.cpp", inline)

		last := blocks[len(blocks)-1]
		assert.Equal(t, "special_lexing", last.Name)
		assert.True(t, last.Indirect)
		assert.Contains(t, last.Raw, "setv va00 1")
	})

	t.Run("disabled fallback drops the test", func(t *testing.T) {
		p := NewParser(ParserOptions{Suite: "caos", Closing: domain.ClosingBare})
		blocks := p.Parse("x.cpp", src)
		assert.Equal(t, []string{"before", "after"}, names(blocks))
	})

	t.Run("missing assignment keeps inline literal", func(t *testing.T) {
		inline := `TEST(caos, special_lexing) { run(R"(inline)"); }`
		blocks := defaultParser().Parse("x.cpp", inline)
		require.Len(t, blocks, 1)
		assert.Equal(t, "inline", blocks[0].Raw)
		assert.False(t, blocks[0].Indirect)
	})

	t.Run("paren style still reads bare assignments", func(t *testing.T) {
		p := NewParser(ParserOptions{
			Suite:          "caos",
			Closing:        domain.ClosingParen,
			IndirectTests:  []string{"special_lexing"},
			IndirectSuffix: "_script",
		})
		blocks := p.Parse("x.cpp", src)
		require.Equal(t, []string{"before", "special_lexing", "after"}, names(blocks))
		assert.True(t, blocks[1].Indirect)
	})
}

func TestParser_NoMatches(t *testing.T) {
	assert.Empty(t, defaultParser().Parse("x.cpp", ""))
	assert.Empty(t, defaultParser().Parse("x.cpp", "int main() { return 0; }"))
	assert.Empty(t, defaultParser().Parse("x.cpp", `TEST(caos, broken) { run(R"(never closed`))
}

func TestParser_ParseFile(t *testing.T) {
	parser := defaultParser()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "CaosTest.cpp")
	if err := os.WriteFile(testFile, []byte(caosTestSource), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds test blocks", func(t *testing.T) {
		blocks, err := parser.ParseFile(testFile)
		require.NoError(t, err)
		assert.Len(t, blocks, 3)
		assert.Equal(t, testFile, blocks[0].Source)
	})

	t.Run("reads CRLF sources as LF", func(t *testing.T) {
		crlfFile := filepath.Join(tmpDir, "WindowsTest.cpp")
		source := "TEST(caos, simple) {\r\n    run(R\"(\r\n    outv 1\r\n\r\n    outv 2\r\n    )\");\r\n}\r\n"
		require.NoError(t, os.WriteFile(crlfFile, []byte(source), 0644))

		blocks, err := parser.ParseFile(crlfFile)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "\n    outv 1\n\n    outv 2\n    ", blocks[0].Raw)
	})

	t.Run("returns not_found for non-existent file", func(t *testing.T) {
		_, err := parser.ParseFile(filepath.Join(tmpDir, "missing.cpp"))
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
