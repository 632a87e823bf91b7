package cookie

import "net/http"

// Middleware attaches a request-scoped Accessor backed by an HTTPStore to
// every request context. Cookies must be set before the handler writes the
// response status.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a := New(NewHTTPStore(w, r), opts...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), a)))
		})
	}
}
