package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/admindash/auth-service/internal/pkg/context"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches a request id to the context and echoes it in the
// response headers. An incoming id is trusted as-is.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := appctx.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
