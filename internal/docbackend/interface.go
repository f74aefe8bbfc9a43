package docbackend

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_backend.go -package=mocks meetingdocs/internal/docbackend Backend

import (
	"context"

	"meetingdocs/internal/docbuild"
)

// Backend is the capability interface for the external rich-text document
// service. All offsets are 0-based byte offsets into the document text;
// implementations translate to their service's native indexing.
type Backend interface {
	// CreateDocument creates a new empty document and returns its ID.
	CreateDocument(ctx context.Context, title string) (string, error)
	// InsertText inserts text at the given position.
	InsertText(ctx context.Context, documentID string, index int, text string) error
	// SetParagraphStyle applies a named paragraph style to [start, end).
	SetParagraphStyle(ctx context.Context, documentID string, start, end int, style string) error
	// SetIndentation indents the paragraphs covering [start, end) by level units.
	SetIndentation(ctx context.Context, documentID string, start, end, level int) error
	// SetTextStyle applies character styling to [start, end).
	SetTextStyle(ctx context.Context, documentID string, start, end int, style docbuild.TextStyle) error
}
