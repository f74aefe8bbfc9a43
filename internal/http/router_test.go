package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"meetingdocs/internal/preview"
	service_mocks "meetingdocs/internal/service/mocks"
	storage_mocks "meetingdocs/internal/storage/mocks"
)

func newTestDeps(ctrl *gomock.Controller) *Deps {
	return &Deps{
		Converter: service_mocks.NewMockConverterService(ctrl),
		Store:     storage_mocks.NewMockConversionStore(ctrl),
		Renderer:  preview.NewRenderer(),
		DB:        nil,
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(ctrl))

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(ctrl))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "POST /api/v1/convert exists",
			method:     http.MethodPost,
			path:       "/api/v1/convert",
			wantStatus: http.StatusBadRequest, // Bad request due to empty body, but route exists
		},
		{
			name:       "GET /api/v1/convert method not allowed",
			method:     http.MethodGet,
			path:       "/api/v1/convert",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST /api/v1/preview exists",
			method:     http.MethodPost,
			path:       "/api/v1/preview",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /api/v1/conversions method mismatch",
			method:     http.MethodPost,
			path:       "/api/v1/conversions",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/v1/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}
