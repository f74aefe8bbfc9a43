package docbuild

import (
	"errors"
	"fmt"

	"meetingdocs/internal/markdown"
)

// ErrSpanMismatch is returned when a block carries mention spans that fall
// outside its text or overlap each other. It indicates a parser bug.
var ErrSpanMismatch = errors.New("mention span mismatch")

// Checkbox glyphs prefixed to checkbox item text.
const (
	CheckedGlyph   = "☑ "
	UncheckedGlyph = "☐ "
)

// Build walks the block sequence and emits the ordered formatting
// instructions that reproduce it on a document backend. Per block it emits
// one InsertText (text plus paragraph break), one ApplyParagraphStyle, an
// ApplyIndentation when the block is nested, a whole-text style for footer
// blocks, and one ApplyTextStyle per mention span. All ranges are byte
// offsets into the cumulative document text, tracked by a running cursor.
func Build(blocks []markdown.Block) ([]Instruction, error) {
	var instrs []Instruction
	cursor := 0

	for i, b := range blocks {
		if err := validateSpans(b); err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}

		prefix := ""
		if b.Kind == markdown.CheckboxItem {
			prefix = UncheckedGlyph
			if b.Checked {
				prefix = CheckedGlyph
			}
		}

		text := prefix + b.Text + "\n"
		start := cursor
		end := start + len(text)

		instrs = append(instrs, Instruction{
			Op:    InsertText,
			Index: start,
			Text:  text,
		})
		instrs = append(instrs, Instruction{
			Op:    ApplyParagraphStyle,
			Start: start,
			End:   end,
			Style: styleFor(b.Kind),
		})
		if b.Depth > 0 {
			instrs = append(instrs, Instruction{
				Op:    ApplyIndentation,
				Start: start,
				End:   end,
				Level: b.Depth,
			})
		}
		if b.Kind == markdown.Footer {
			instrs = append(instrs, Instruction{
				Op:        ApplyTextStyle,
				Start:     start,
				End:       start + len(b.Text),
				TextStyle: TextStyle{Italic: true, Color: FooterColor},
			})
		}
		for _, sp := range b.Mentions {
			instrs = append(instrs, Instruction{
				Op:        ApplyTextStyle,
				Start:     start + len(prefix) + sp.Start,
				End:       start + len(prefix) + sp.End,
				TextStyle: TextStyle{Bold: true, Color: MentionColor},
			})
		}

		cursor = end
	}

	return instrs, nil
}

// styleFor maps a block kind to its paragraph style name.
func styleFor(kind markdown.Kind) string {
	switch kind {
	case markdown.Title:
		return StyleTitle
	case markdown.SectionHeading:
		return StyleSection
	case markdown.SubHeading:
		return StyleSub
	case markdown.BulletItem, markdown.CheckboxItem:
		return StyleBullet
	default:
		return StyleNormal
	}
}

// validateSpans asserts the parser's span invariants: ordered, within the
// text bounds, non-empty and non-overlapping.
func validateSpans(b markdown.Block) error {
	prevEnd := 0
	for _, sp := range b.Mentions {
		if sp.Start < 0 || sp.End > len(b.Text) || sp.Start >= sp.End {
			return fmt.Errorf("%w: span [%d,%d) outside text of length %d",
				ErrSpanMismatch, sp.Start, sp.End, len(b.Text))
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("%w: span [%d,%d) overlaps previous span ending at %d",
				ErrSpanMismatch, sp.Start, sp.End, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}
