package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. Input submissions are a few hundred
// bytes.
const maxJSONBodyBytes = 16 << 10

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// requestLogger returns the request-scoped logger set by the logging
// middleware.
func requestLogger(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context())
}

// decodeJSONBody decodes the request body as JSON into dst and validates it.
// On failure it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}
