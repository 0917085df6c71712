package middleware

import (
	"net/http"
	"strings"

	"github.com/admindash/auth-service/internal/application/auth"
	"github.com/admindash/auth-service/internal/domain"
	"github.com/admindash/auth-service/internal/infrastructure/security"
	"github.com/admindash/auth-service/internal/transport/http/response"
)

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	VerifySessionToken(token string) (auth.TokenClaims, error)
}

// Auth authenticates requests from either the session cookie or an
// Authorization: Bearer header. The cookie is the primary transport;
// the header exists for non-browser clients.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				token, _ = security.ReadSessionCookie(r)
			}
			if token == "" {
				response.WriteError(w, r, domain.ErrTokenMissing())
				return
			}

			claims, err := verifier.VerifySessionToken(token)
			if err != nil {
				response.WriteError(w, r, err)
				return
			}

			ctx := WithUser(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
