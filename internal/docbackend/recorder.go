package docbackend

import (
	"context"
	"fmt"

	"meetingdocs/internal/docbuild"
)

// Call records one backend invocation made against a Recorder.
type Call struct {
	Method     string
	DocumentID string
	Title      string
	Index      int
	Start      int
	End        int
	Text       string
	Style      string
	Level      int
	TextStyle  docbuild.TextStyle
}

// Recorder is an in-memory Backend that captures the call sequence instead
// of talking to a service. It backs unit tests and dry runs.
type Recorder struct {
	Calls   []Call
	created int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreateDocument records the call and returns a synthetic document ID.
func (r *Recorder) CreateDocument(_ context.Context, title string) (string, error) {
	r.created++
	id := fmt.Sprintf("doc-%d", r.created)
	r.Calls = append(r.Calls, Call{Method: "CreateDocument", DocumentID: id, Title: title})
	return id, nil
}

// InsertText records the call.
func (r *Recorder) InsertText(_ context.Context, documentID string, index int, text string) error {
	r.Calls = append(r.Calls, Call{Method: "InsertText", DocumentID: documentID, Index: index, Text: text})
	return nil
}

// SetParagraphStyle records the call.
func (r *Recorder) SetParagraphStyle(_ context.Context, documentID string, start, end int, style string) error {
	r.Calls = append(r.Calls, Call{Method: "SetParagraphStyle", DocumentID: documentID, Start: start, End: end, Style: style})
	return nil
}

// SetIndentation records the call.
func (r *Recorder) SetIndentation(_ context.Context, documentID string, start, end, level int) error {
	r.Calls = append(r.Calls, Call{Method: "SetIndentation", DocumentID: documentID, Start: start, End: end, Level: level})
	return nil
}

// SetTextStyle records the call.
func (r *Recorder) SetTextStyle(_ context.Context, documentID string, start, end int, style docbuild.TextStyle) error {
	r.Calls = append(r.Calls, Call{Method: "SetTextStyle", DocumentID: documentID, Start: start, End: end, TextStyle: style})
	return nil
}
