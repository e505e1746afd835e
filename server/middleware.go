package server

import (
	"net/http"

	"github.com/google/uuid"

	"weather-dashboard/util"
)

const REQUEST_ID_HEADER = "X-Request-ID"

// RequestIDMiddleware tags each request with an id, reusing the caller's
// X-Request-ID when present, and echoes it on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, id)
		next.ServeHTTP(w, r.WithContext(util.WithRequestID(r.Context(), id)))
	})
}
