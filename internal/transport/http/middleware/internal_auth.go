package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/admindash/auth-service/internal/domain"
	"github.com/admindash/auth-service/internal/transport/http/response"
)

const internalSecretHeader = "X-Internal-Secret"

// InternalAuth guards service-to-service endpoints with a shared secret.
// An empty configured secret disables the surface entirely.
func InternalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(internalSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				response.WriteError(w, r, domain.ErrTokenInvalid())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
