package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_converter_service.go -package=mocks meetingdocs/internal/service ConverterService

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"meetingdocs/internal/contextutil"
	"meetingdocs/internal/docbackend"
	"meetingdocs/internal/docbuild"
	"meetingdocs/internal/markdown"
	"meetingdocs/internal/storage"
)

// DefaultTitle is used when a conversion request carries no title.
const DefaultTitle = "Converted Notes"

// ConvertRequest represents a conversion request in the domain layer.
type ConvertRequest struct {
	Title    string
	Markdown string
}

// ConvertResult represents the outcome of a conversion.
type ConvertResult struct {
	DocumentID string
	URL        string
	BlockCount int
}

// ConverterService converts markdown notes into formatted documents.
type ConverterService interface {
	// Convert parses the markdown, creates a document on the backend,
	// applies the formatting instructions and records the conversion.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
}

// Converter implements ConverterService. The backend is injected rather than
// held as ambient session state, so independent conversions never share
// credentials or document handles.
type Converter struct {
	backend      docbackend.Backend
	store        storage.ConversionStore
	parseOpts    markdown.Options
	linkTemplate string
}

// NewConverter creates a new Converter. store may be nil for one-shot
// conversions that keep no history (the CLI path). linkTemplate is a
// fmt template with one %s verb for the document ID; empty disables links.
func NewConverter(backend docbackend.Backend, store storage.ConversionStore, parseOpts markdown.Options, linkTemplate string) *Converter {
	return &Converter{
		backend:      backend,
		store:        store,
		parseOpts:    parseOpts,
		linkTemplate: linkTemplate,
	}
}

// Convert runs the full pipeline: parse -> build -> create -> apply -> record.
func (c *Converter) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Markdown) == "" {
		return nil, WrapError(ErrInvalidInput, "markdown is empty")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultTitle
	}

	blocks, err := markdown.Parse(req.Markdown, c.parseOpts)
	if err != nil {
		if errors.Is(err, markdown.ErrMalformedInput) {
			return nil, WrapError(ErrInvalidInput, err.Error())
		}
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	instrs, err := docbuild.Build(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to build instructions: %w", err)
	}
	logger.InfoContext(ctx, "notes parsed", "title", title, "blocks", len(blocks), "instructions", len(instrs))

	documentID, err := c.backend.CreateDocument(ctx, title)
	if err != nil {
		return nil, WrapError(ErrBackend, fmt.Sprintf("failed to create document: %v", err))
	}

	if err := docbackend.Apply(ctx, c.backend, documentID, instrs); err != nil {
		return nil, WrapError(ErrBackend, fmt.Sprintf("failed to populate document %s: %v", documentID, err))
	}

	if c.store != nil {
		rec := &storage.ConversionRecord{
			Title:      title,
			DocumentID: documentID,
			SourceHash: hashSource(req.Markdown),
			BlockCount: len(blocks),
		}
		if err := c.store.Insert(ctx, rec); err != nil {
			// The document exists at this point; losing the record is not
			// worth failing the request over.
			logger.WarnContext(ctx, "failed to record conversion", "document_id", documentID, "error", err)
		}
	}

	result := &ConvertResult{
		DocumentID: documentID,
		BlockCount: len(blocks),
	}
	if c.linkTemplate != "" {
		result.URL = fmt.Sprintf(c.linkTemplate, documentID)
	}

	logger.InfoContext(ctx, "document created", "document_id", documentID, "url", result.URL)
	return result, nil
}

func hashSource(markdownText string) string {
	sum := sha256.Sum256([]byte(markdownText))
	return hex.EncodeToString(sum[:])
}
