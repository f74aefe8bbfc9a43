package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"meetingdocs/internal/docbackend"
	backend_mocks "meetingdocs/internal/docbackend/mocks"
	"meetingdocs/internal/markdown"
	"meetingdocs/internal/service"
	"meetingdocs/internal/storage"
	storage_mocks "meetingdocs/internal/storage/mocks"
)

func TestConverter_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage_mocks.NewMockConversionStore(ctrl)
	rec := docbackend.NewRecorder()
	converter := service.NewConverter(rec, store, markdown.Options{}, "https://docs.example.com/d/%s/edit")

	var inserted *storage.ConversionRecord
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *storage.ConversionRecord) error {
			inserted = r
			return nil
		})

	result, err := converter.Convert(context.Background(), service.ConvertRequest{
		Title:    "Weekly Sync",
		Markdown: "# Team Sync\n\n## Attendees\n- Alice\n- @bob\n",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if result.DocumentID != "doc-1" {
		t.Errorf("Convert() document ID = %q, want doc-1", result.DocumentID)
	}
	if result.URL != "https://docs.example.com/d/doc-1/edit" {
		t.Errorf("Convert() URL = %q, want templated link", result.URL)
	}
	if result.BlockCount != 4 {
		t.Errorf("Convert() block count = %d, want 4", result.BlockCount)
	}

	if inserted == nil {
		t.Fatal("Convert() did not record the conversion")
	}
	if inserted.Title != "Weekly Sync" || inserted.DocumentID != "doc-1" || inserted.BlockCount != 4 {
		t.Errorf("recorded conversion = %+v", inserted)
	}
	if len(inserted.SourceHash) != 64 {
		t.Errorf("source hash length = %d, want 64 hex chars", len(inserted.SourceHash))
	}

	// The recorder should have seen the create followed by the replayed
	// instruction sequence: 4 inserts, 4 paragraph styles, 1 mention style.
	if rec.Calls[0].Method != "CreateDocument" || rec.Calls[0].Title != "Weekly Sync" {
		t.Errorf("first call = %+v, want CreateDocument with title", rec.Calls[0])
	}
	counts := map[string]int{}
	for _, c := range rec.Calls {
		counts[c.Method]++
	}
	if counts["InsertText"] != 4 || counts["SetParagraphStyle"] != 4 || counts["SetTextStyle"] != 1 {
		t.Errorf("backend call counts = %v", counts)
	}
}

func TestConverter_Convert_DefaultTitle(t *testing.T) {
	rec := docbackend.NewRecorder()
	converter := service.NewConverter(rec, nil, markdown.Options{}, "")

	result, err := converter.Convert(context.Background(), service.ConvertRequest{
		Markdown: "hello\n",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if rec.Calls[0].Title != service.DefaultTitle {
		t.Errorf("title = %q, want default", rec.Calls[0].Title)
	}
	if result.URL != "" {
		t.Errorf("URL = %q, want empty without a link template", result.URL)
	}
}

func TestConverter_Convert_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
	}{
		{name: "empty", markdown: ""},
		{name: "whitespace only", markdown: "   \n\t\n"},
		{name: "invalid utf-8", markdown: string([]byte{0xff, 0xfe})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := service.NewConverter(docbackend.NewRecorder(), nil, markdown.Options{}, "")

			_, err := converter.Convert(context.Background(), service.ConvertRequest{Markdown: tt.markdown})
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Errorf("Convert() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestConverter_Convert_BackendFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("create fails", func(t *testing.T) {
		backend := backend_mocks.NewMockBackend(ctrl)
		backend.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("permission denied"))

		converter := service.NewConverter(backend, nil, markdown.Options{}, "")
		_, err := converter.Convert(context.Background(), service.ConvertRequest{Markdown: "hi\n"})
		if !errors.Is(err, service.ErrBackend) {
			t.Errorf("Convert() error = %v, want ErrBackend", err)
		}
	})

	t.Run("apply fails", func(t *testing.T) {
		backend := backend_mocks.NewMockBackend(ctrl)
		backend.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return("doc-9", nil)
		backend.EXPECT().InsertText(gomock.Any(), "doc-9", gomock.Any(), gomock.Any()).Return(fmt.Errorf("quota"))

		converter := service.NewConverter(backend, nil, markdown.Options{}, "")
		_, err := converter.Convert(context.Background(), service.ConvertRequest{Markdown: "hi\n"})
		if !errors.Is(err, service.ErrBackend) {
			t.Errorf("Convert() error = %v, want ErrBackend", err)
		}
	})
}

func TestConverter_Convert_StoreFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage_mocks.NewMockConversionStore(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))

	converter := service.NewConverter(docbackend.NewRecorder(), store, markdown.Options{}, "")

	result, err := converter.Convert(context.Background(), service.ConvertRequest{Markdown: "hi\n"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if result.DocumentID == "" {
		t.Error("Convert() should still return the document")
	}
}

func TestConverter_Convert_FooterOptionsFlowThrough(t *testing.T) {
	rec := docbackend.NewRecorder()
	converter := service.NewConverter(rec, nil, markdown.Options{FooterDelimiter: "==="}, "")

	_, err := converter.Convert(context.Background(), service.ConvertRequest{
		Markdown: "body\n===\nsigned off\n",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	// Footer styling shows up as an italic text style over "signed off".
	var sawItalic bool
	for _, c := range rec.Calls {
		if c.Method == "SetTextStyle" && c.TextStyle.Italic {
			sawItalic = true
		}
	}
	if !sawItalic {
		t.Error("expected italic footer styling with custom delimiter")
	}

	if strings.Contains(fmt.Sprintf("%v", rec.Calls), "===") {
		t.Error("footer delimiter line should be consumed, not inserted")
	}
}
