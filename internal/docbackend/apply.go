package docbackend

import (
	"context"
	"fmt"

	"meetingdocs/internal/docbuild"
)

// Apply replays formatting instructions against the backend in order,
// one backend call per instruction. It stops at the first failure; the
// instructions carry no retry semantics of their own.
func Apply(ctx context.Context, backend Backend, documentID string, instrs []docbuild.Instruction) error {
	for i, in := range instrs {
		var err error
		switch in.Op {
		case docbuild.InsertText:
			err = backend.InsertText(ctx, documentID, in.Index, in.Text)
		case docbuild.ApplyParagraphStyle:
			err = backend.SetParagraphStyle(ctx, documentID, in.Start, in.End, in.Style)
		case docbuild.ApplyIndentation:
			err = backend.SetIndentation(ctx, documentID, in.Start, in.End, in.Level)
		case docbuild.ApplyTextStyle:
			err = backend.SetTextStyle(ctx, documentID, in.Start, in.End, in.TextStyle)
		default:
			err = fmt.Errorf("unknown op %d", int(in.Op))
		}
		if err != nil {
			return fmt.Errorf("failed to apply instruction %d (%s): %w", i, in.Op, err)
		}
	}
	return nil
}
