package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"richmondtech/internal/delivery/http/controllers"
	"richmondtech/internal/domain"
)

type stubAsk struct{}

func (stubAsk) Ask(context.Context, string, map[string]any) (*domain.Answer, error) {
	return &domain.Answer{Answer: "ok", ToolsUsed: []string{}}, nil
}

type stubHealth struct{}

func (stubHealth) Check(context.Context) *domain.Health {
	return &domain.Health{Status: "ok", Components: map[string]string{}}
}

type stubSeeder struct{}

func (stubSeeder) Seed(context.Context) (int, error) { return 27, nil }

func newTestRouter(adminToken string) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(
		controllers.NewAskController(logger, stubAsk{}),
		controllers.NewHealthController(stubHealth{}),
		controllers.NewAdminController(logger, stubSeeder{}),
		adminToken,
	)
}

func TestRouter_Routes(t *testing.T) {
	mux := newTestRouter("tok")

	tests := []struct {
		method     string
		path       string
		auth       string
		wantStatus int
	}{
		{http.MethodPost, "/ask", "", http.StatusOK},
		{http.MethodGet, "/ask", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/admin/seed", "Bearer tok", http.StatusOK},
		{http.MethodPost, "/admin/seed", "", http.StatusUnauthorized},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body io.Reader
			if tt.method == http.MethodPost && tt.path == "/ask" {
				body = strings.NewReader(`{"question":"hi"}`)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
