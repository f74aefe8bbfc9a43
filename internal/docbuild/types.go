package docbuild

// Op identifies a formatting instruction operation.
type Op int

const (
	InsertText Op = iota
	ApplyParagraphStyle
	ApplyIndentation
	ApplyTextStyle
)

// String returns a human-readable name for the operation.
func (o Op) String() string {
	switch o {
	case InsertText:
		return "insert_text"
	case ApplyParagraphStyle:
		return "apply_paragraph_style"
	case ApplyIndentation:
		return "apply_indentation"
	case ApplyTextStyle:
		return "apply_text_style"
	default:
		return "unknown"
	}
}

// Paragraph style names understood by document backends.
const (
	StyleTitle   = "HEADING_1"
	StyleSection = "HEADING_2"
	StyleSub     = "HEADING_3"
	StyleBullet  = "BULLET"
	StyleNormal  = "NORMAL_TEXT"
)

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
}

var (
	// MentionColor is the accent color applied to @name spans.
	MentionColor = Color{R: 0.15, G: 0.15, B: 0.6}
	// FooterColor is the muted color applied to footer text.
	FooterColor = Color{R: 0.4, G: 0.4, B: 0.4}
)

// TextStyle describes character-range styling.
type TextStyle struct {
	Bold   bool
	Italic bool
	Color  Color
}

// Instruction is one atomic mutation against a document backend.
// InsertText uses Index and Text; the style operations use the half-open
// byte range [Start, End) plus their operation-specific field.
type Instruction struct {
	Op        Op
	Index     int
	Start     int
	End       int
	Text      string
	Style     string
	Level     int
	TextStyle TextStyle
}
