package middleware

import "net/http"

// MaxRequestSize caps request bodies. Oversized JSON bodies fail at
// decode time with a 400; oversized multipart uploads fail inside
// ParseMultipartForm.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
