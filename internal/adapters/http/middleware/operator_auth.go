package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

const headerOperatorToken = "X-Operator-Token"

// OperatorAuth returns middleware that admits a request only when it
// presents the operator token, either as "Authorization: Bearer <token>"
// or in X-Operator-Token. An empty configured token rejects everything.
func OperatorAuth(token string) func(http.Handler) http.Handler {
	want := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := presentedToken(r)
			if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="operator"`)
				dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func presentedToken(r *http.Request) string {
	if tok := r.Header.Get(headerOperatorToken); tok != "" {
		return tok
	}
	scheme, tok, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}
