package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"meetingdocs/internal/contextutil"
	"meetingdocs/internal/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ConversionsHandler lists past conversions.
type ConversionsHandler struct {
	store storage.ConversionStore
}

// NewConversionsHandler creates a new ConversionsHandler.
func NewConversionsHandler(store storage.ConversionStore) *ConversionsHandler {
	return &ConversionsHandler{store: store}
}

// ConversionResponse represents one conversion record in the HTTP response.
type ConversionResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	DocumentID string `json:"document_id"`
	BlockCount int    `json:"block_count"`
	CreatedAt  string `json:"created_at"`
}

// ConversionsResponse represents the HTTP response payload for the listing.
type ConversionsResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
}

// ServeHTTP handles GET requests listing recent conversions.
func (h *ConversionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit := defaultListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			logger.WarnContext(ctx, "invalid limit parameter", "limit", limitParam)
			writeError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := h.store.ListRecent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list conversions", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list conversions")
		return
	}

	resp := ConversionsResponse{Conversions: make([]ConversionResponse, 0, len(records))}
	for _, rec := range records {
		resp.Conversions = append(resp.Conversions, ConversionResponse{
			ID:         rec.ID,
			Title:      rec.Title,
			DocumentID: rec.DocumentID,
			BlockCount: rec.BlockCount,
			CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
