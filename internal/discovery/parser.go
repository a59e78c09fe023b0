package discovery

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"cosx/internal/domain"
)

// ParserOptions selects which declarations and literals the Parser recognizes
type ParserOptions struct {
	Suite          string              // First argument of TEST(suite, name)
	Closing        domain.ClosingStyle // How a literal ends
	IndirectTests  []string            // Tests whose literal lives in <name><IndirectSuffix>
	IndirectSuffix string
}

// Parser parses C++ test sources to extract embedded script literals
type Parser struct {
	blockPattern *regexp.Regexp
	declPattern  *regexp.Regexp
	indirect     map[string]*regexp.Regexp // test name -> assignment pattern
}

// NewParser creates a new Parser
func NewParser(opts ParserOptions) *Parser {
	suite := regexp.QuoteMeta(opts.Suite)

	// TEST(caos, name) { ... R"( body )"
	// The block may not close before the literal starts; the body is the
	// shortest span up to the closing marker.
	blockPattern := regexp.MustCompile(`(?s)TEST\(` + suite + `,\s*(\w+)\)\s*\{[^}]*?R"\((.*?)` + closingMarker(opts.Closing))
	declPattern := regexp.MustCompile(`TEST\(` + suite + `,\s*(\w+)\)\s*\{`)

	// Assignments always end at )" regardless of the closing style.
	indirect := make(map[string]*regexp.Regexp)
	for _, name := range opts.IndirectTests {
		variable := regexp.QuoteMeta(name + opts.IndirectSuffix)
		indirect[name] = regexp.MustCompile(`(?s)\b` + variable + `\s*=\s*R"\((.*?)\)"`)
	}

	return &Parser{
		blockPattern: blockPattern,
		declPattern:  declPattern,
		indirect:     indirect,
	}
}

// lineEndings converts CRLF and lone CR line breaks to LF.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}

func closingMarker(style domain.ClosingStyle) string {
	if style == domain.ClosingParen {
		return `\)"\)`
	}
	return `\)"`
}

// ParseFile reads a source file and returns its test blocks
func (p *Parser) ParseFile(path string) ([]domain.TestBlock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindRead
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "discovery.parse_file",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	return p.Parse(path, lineEndings.Replace(string(content))), nil
}

// Parse finds all test blocks in content, in document order.
// Blocks with whitespace-only literals are included; callers decide whether to skip them.
func (p *Parser) Parse(source, content string) []domain.TestBlock {
	var blocks []domain.TestBlock
	seen := make(map[string]bool)

	for _, m := range p.blockPattern.FindAllStringSubmatchIndex(content, -1) {
		block := domain.TestBlock{
			Name:   content[m[2]:m[3]],
			Raw:    content[m[4]:m[5]],
			Source: source,
			Offset: m[0],
			Line:   lineAt(content, m[0]),
		}
		if _, ok := p.indirect[block.Name]; ok {
			if literal, ok := p.lookupIndirect(block.Name, content); ok {
				block.Raw = literal
				block.Indirect = true
			}
		}
		seen[block.Name] = true
		blocks = append(blocks, block)
	}

	// An indirect test may have no inline literal at all, in which case the
	// block pattern never matched it.
	if len(p.indirect) > 0 {
		for _, m := range p.declPattern.FindAllStringSubmatchIndex(content, -1) {
			name := content[m[2]:m[3]]
			if _, ok := p.indirect[name]; !ok || seen[name] {
				continue
			}
			literal, ok := p.lookupIndirect(name, content)
			if !ok {
				continue
			}
			seen[name] = true
			blocks = append(blocks, domain.TestBlock{
				Name:     name,
				Raw:      literal,
				Source:   source,
				Offset:   m[0],
				Line:     lineAt(content, m[0]),
				Indirect: true,
			})
		}
		sort.SliceStable(blocks, func(i, j int) bool {
			return blocks[i].Offset < blocks[j].Offset
		})
	}

	return blocks
}

// lookupIndirect searches the whole document for the test's script assignment
func (p *Parser) lookupIndirect(name, content string) (string, bool) {
	m := p.indirect[name].FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}
