package middleware

import "net/http"

// Chain composes middleware so the first argument is the outermost layer:
//
//	Chain(Recovery(logger), RequestID(), OperatorAuth(token))(handler)
//
// is equivalent to:
//
//	Recovery(logger)(RequestID()(OperatorAuth(token)(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
