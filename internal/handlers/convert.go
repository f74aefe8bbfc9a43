package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meetingdocs/internal/contextutil"
	"meetingdocs/internal/service"
)

// ConvertHandler handles HTTP requests to convert markdown notes into a
// formatted document.
type ConvertHandler struct {
	converter service.ConverterService
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(converter service.ConverterService) *ConvertHandler {
	return &ConvertHandler{converter: converter}
}

// ConvertRequest represents the HTTP request payload for conversions.
// This mirrors service.ConvertRequest but is defined here for HTTP layer separation.
type ConvertRequest struct {
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown"`
}

// ConvertResponse represents the HTTP response payload for conversions.
type ConvertResponse struct {
	// ID assigned to the new document by the backend
	DocumentID string `json:"document_id"`

	// Edit link for the new document
	URL string `json:"url,omitempty"`

	// Number of structural blocks parsed from the markdown
	Blocks int `json:"blocks"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles POST requests that convert markdown into a document.
func (h *ConvertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Markdown == "" {
		logger.WarnContext(ctx, "empty markdown in request")
		writeError(w, http.StatusBadRequest, "Markdown is required")
		return
	}

	result, err := h.converter.Convert(ctx, service.ConvertRequest{
		Title:    req.Title,
		Markdown: req.Markdown,
	})
	if err != nil {
		h.handleConvertError(w, r, err)
		return
	}

	resp := ConvertResponse{
		DocumentID: result.DocumentID,
		URL:        result.URL,
		Blocks:     result.BlockCount,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleConvertError maps converter errors to HTTP status codes.
func (h *ConvertHandler) handleConvertError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "conversion failed", "error", err)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid markdown input")
	case errors.Is(err, service.ErrBackend):
		writeError(w, http.StatusBadGateway, "Document backend error")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to convert notes")
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
