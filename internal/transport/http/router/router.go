package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	redisinfra "github.com/admindash/auth-service/internal/infrastructure/redis"
	"github.com/admindash/auth-service/internal/transport/http/handlers"
	"github.com/admindash/auth-service/internal/transport/http/middleware"
)

// Deps carries everything the router wires together.
type Deps struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler

	Verifier       middleware.TokenVerifier
	InternalSecret string

	// Limiter may be nil; rate limiting is then disabled.
	Limiter *redisinfra.FixedWindowLimiter
}

// New builds the HTTP routing table.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", d.Health.Healthz)
	r.Get("/readyz", d.Health.Readyz)

	r.Route("/api", func(r chi.Router) {
		// Credential endpoints get tighter limits than the rest of the API.
		r.With(middleware.RateLimitFixedWindow(d.Limiter, "signup", 10, time.Minute)).
			Post("/signup", d.Auth.SignUp)
		r.With(middleware.RateLimitFixedWindow(d.Limiter, "signin", 20, time.Minute)).
			Post("/signin", d.Auth.SignIn)
		r.Post("/signout", d.Auth.SignOut)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Verifier))
			r.Get("/me", d.Auth.Me)
		})
	})

	r.Route("/internal", func(r chi.Router) {
		r.Use(middleware.InternalAuth(d.InternalSecret))
		r.Post("/users/{id}/approve", d.Auth.Approve)
	})

	return r
}
