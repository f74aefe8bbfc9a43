// Package preview renders markdown notes to HTML so users can check a
// document before converting it. Rendering goes through goldmark with the
// GFM extension enabled, which covers the task-list checkboxes used by
// meeting notes.
package preview

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer renders markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render converts markdown text to an HTML fragment.
func (r *Renderer) Render(markdownText string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdownText), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
