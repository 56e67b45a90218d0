package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/middleware"
)

func TestOperatorAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		header     string
		value      string
		wantStatus int
	}{
		{"bearer token accepted", "s3cret", "Authorization", "Bearer s3cret", http.StatusNoContent},
		{"lowercase scheme accepted", "s3cret", "Authorization", "bearer s3cret", http.StatusNoContent},
		{"operator header accepted", "s3cret", "X-Operator-Token", "s3cret", http.StatusNoContent},
		{"wrong token rejected", "s3cret", "Authorization", "Bearer nope", http.StatusUnauthorized},
		{"basic scheme rejected", "s3cret", "Authorization", "Basic s3cret", http.StatusUnauthorized},
		{"missing header rejected", "s3cret", "", "", http.StatusUnauthorized},
		{"empty configured token rejects all", "", "Authorization", "Bearer ", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := middleware.OperatorAuth(tt.configured)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/abort", http.NoBody)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != (tt.wantStatus == http.StatusNoContent) {
				t.Errorf("handler called = %v, want %v", called, !called)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if got := rec.Header().Get("Content-Type"); got != "application/problem+json" {
					t.Errorf("Content-Type = %q, want %q", got, "application/problem+json")
				}
				if rec.Header().Get("WWW-Authenticate") == "" {
					t.Error("response missing WWW-Authenticate header")
				}
			}
		})
	}
}
