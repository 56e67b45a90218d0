package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// seenID runs one request through RequestID and returns the ID the handler
// saw along with the recorded response.
func seenID(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var got string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		path     string
		incoming string
	}{
		{name: "abort without caller id", method: http.MethodPost, path: "/api/v1/abort"},
		{name: "plan poll without caller id", method: http.MethodGet, path: "/api/v1/plan"},
		{name: "driver station id is kept", method: http.MethodPost, path: "/api/v1/abort", incoming: "ds-field-2-0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			got, rec := seenID(t, req)

			switch {
			case tt.incoming != "" && got != tt.incoming:
				t.Errorf("RequestIDFromContext = %q, want %q", got, tt.incoming)
			case tt.incoming == "" && !uuidPattern.MatchString(got):
				t.Errorf("generated ID %q does not match UUID v4 pattern", got)
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != got {
				t.Errorf("response X-Request-ID = %q, want %q", respID, got)
			}
		})
	}
}

func TestRequestID_EveryAbortGetsItsOwnID(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 50 {
		id, _ := seenID(t, httptest.NewRequest(http.MethodPost, "/api/v1/abort", http.NoBody))
		ids[id] = true
	}
	if len(ids) != 50 {
		t.Errorf("unique IDs = %d, want 50", len(ids))
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty string", id)
	}
	ctx := middleware.WithRequestID(context.Background(), "abort-7")
	if got := middleware.RequestIDFromContext(ctx); got != "abort-7" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "abort-7")
	}
}
