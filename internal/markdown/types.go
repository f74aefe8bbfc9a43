package markdown

// Kind identifies the structural role of a parsed block.
type Kind int

const (
	Title Kind = iota
	SectionHeading
	SubHeading
	BulletItem
	CheckboxItem
	Paragraph
	Footer
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Title:
		return "title"
	case SectionHeading:
		return "section_heading"
	case SubHeading:
		return "sub_heading"
	case BulletItem:
		return "bullet_item"
	case CheckboxItem:
		return "checkbox_item"
	case Paragraph:
		return "paragraph"
	case Footer:
		return "footer"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) within a block's text.
type Span struct {
	Start int
	End   int
}

// Block is one structural unit of the source document.
// Depth is meaningful only for BulletItem and CheckboxItem (0 = top level).
// Checked is meaningful only for CheckboxItem.
// Mentions are the @name ranges within Text, sorted by Start, non-overlapping.
type Block struct {
	Kind     Kind
	Text     string
	Depth    int
	Checked  bool
	Mentions []Span
}

// Options controls parsing behavior. The zero value is usable; missing
// fields fall back to defaults.
type Options struct {
	// IndentWidth is the number of spaces that make up one indentation unit.
	// Tabs always count as one unit each. Defaults to 2.
	IndentWidth int
	// FooterDelimiter is the literal line (after trimming surrounding
	// whitespace) that switches the parser into footer mode. Defaults to
	// "---". Footer text is never inferred from position alone.
	FooterDelimiter string
}

// DefaultIndentWidth is the spaces-per-indent-level used when Options.IndentWidth is unset.
const DefaultIndentWidth = 2

// DefaultFooterDelimiter is the footer marker line used when Options.FooterDelimiter is unset.
const DefaultFooterDelimiter = "---"

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	if o.FooterDelimiter == "" {
		o.FooterDelimiter = DefaultFooterDelimiter
	}
	return o
}
