package handlers

import (
	"encoding/json"
	"net/http"

	"meetingdocs/internal/contextutil"
	"meetingdocs/internal/preview"
)

// PreviewHandler renders markdown to HTML without touching the backend.
type PreviewHandler struct {
	renderer *preview.Renderer
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(renderer *preview.Renderer) *PreviewHandler {
	return &PreviewHandler{renderer: renderer}
}

// PreviewRequest represents the HTTP request payload for previews.
type PreviewRequest struct {
	Markdown string `json:"markdown"`
}

// PreviewResponse represents the HTTP response payload for previews.
type PreviewResponse struct {
	HTML string `json:"html"`
}

// ServeHTTP handles POST requests that render a markdown preview.
func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req PreviewRequest
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

	html, err := h.renderer.Render(req.Markdown)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render preview", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PreviewResponse{HTML: html}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
