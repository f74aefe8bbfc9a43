package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrMalformedInput is returned when the input is not valid UTF-8 text.
var ErrMalformedInput = errors.New("malformed input")

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	checkboxPattern = regexp.MustCompile(`^([ \t]*)[-*+][ \t]+\[([ xX])\][ \t]*(.*)$`)
	bulletPattern   = regexp.MustCompile(`^([ \t]*)[-*+][ \t]+(.*)$`)
	mentionPattern  = regexp.MustCompile(`@[A-Za-z0-9_-]+`)
)

// Parse converts markdown text into an ordered sequence of structural blocks.
// It is a pure single-pass line scanner: headings, bullets, checkboxes and
// footer lines are recognized, empty lines are consumed as separators, and
// any other non-empty line degrades to a Paragraph rather than failing.
// The only error condition is input that is not valid UTF-8.
func Parse(text string, opts Options) ([]Block, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformedInput)
	}
	opts = opts.withDefaults()

	var blocks []Block
	prevDepth := -1 // depth of the previous list item, -1 when no list run is open
	sawTitle := false
	inFooter := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if line == "" {
			continue
		}

		if !inFooter && strings.TrimSpace(line) == opts.FooterDelimiter {
			inFooter = true
			prevDepth = -1
			continue
		}
		if inFooter {
			content := strings.TrimSpace(line)
			blocks = append(blocks, Block{
				Kind:     Footer,
				Text:     content,
				Mentions: extractMentions(content),
			})
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			kind := headingKind(len(m[1]), sawTitle)
			if kind == Title {
				sawTitle = true
			}
			content := strings.TrimSpace(m[2])
			blocks = append(blocks, Block{
				Kind:     kind,
				Text:     content,
				Mentions: extractMentions(content),
			})
			prevDepth = -1
			continue
		}

		if m := checkboxPattern.FindStringSubmatch(line); m != nil {
			depth := clampDepth(indentUnits(m[1], opts.IndentWidth), prevDepth)
			prevDepth = depth
			content := strings.TrimSpace(m[3])
			blocks = append(blocks, Block{
				Kind:     CheckboxItem,
				Text:     content,
				Depth:    depth,
				Checked:  m[2] != " ",
				Mentions: extractMentions(content),
			})
			continue
		}

		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			depth := clampDepth(indentUnits(m[1], opts.IndentWidth), prevDepth)
			prevDepth = depth
			content := strings.TrimSpace(m[2])
			blocks = append(blocks, Block{
				Kind:     BulletItem,
				Text:     content,
				Depth:    depth,
				Mentions: extractMentions(content),
			})
			continue
		}

		content := strings.TrimSpace(line)
		blocks = append(blocks, Block{
			Kind:     Paragraph,
			Text:     content,
			Mentions: extractMentions(content),
		})
		prevDepth = -1
	}

	return blocks, nil
}

// headingKind maps a run of '#' characters to a block kind. Levels beyond
// three clamp to SubHeading, and a second level-one heading demotes to
// SectionHeading so the document keeps a single Title.
func headingKind(hashes int, sawTitle bool) Kind {
	if hashes > 3 {
		hashes = 3
	}
	switch hashes {
	case 1:
		if sawTitle {
			return SectionHeading
		}
		return Title
	case 2:
		return SectionHeading
	default:
		return SubHeading
	}
}

// indentUnits counts indentation units in a leading whitespace run.
// Each tab is one unit; spaces accumulate at indentWidth per unit.
func indentUnits(indent string, indentWidth int) int {
	tabs := strings.Count(indent, "\t")
	spaces := len(indent) - tabs
	return tabs + spaces/indentWidth
}

// clampDepth limits a list item's depth to at most one level deeper than the
// previous list item, so indentation jumps never produce orphaned nesting.
func clampDepth(depth, prevDepth int) int {
	if depth > prevDepth+1 {
		return prevDepth + 1
	}
	return depth
}

// extractMentions returns the byte ranges of @name tokens in text. A token
// only counts when the '@' is not preceded by an identifier character, so
// addresses like "a@b" are left alone.
func extractMentions(text string) []Span {
	var spans []Span
	for _, loc := range mentionPattern.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && isIdentByte(text[loc[0]-1]) {
			continue
		}
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}
	return spans
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
