package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/admindash/auth-service/internal/application/auth"
	"github.com/admindash/auth-service/internal/domain"
	"github.com/admindash/auth-service/internal/infrastructure/security"
	"github.com/admindash/auth-service/internal/logger"
	"github.com/admindash/auth-service/internal/transport/http/dto"
	"github.com/admindash/auth-service/internal/transport/http/middleware"
	"github.com/admindash/auth-service/internal/transport/http/response"
)

// AuthHandler exposes the account lifecycle over HTTP: registration,
// sign-in/out, the authenticated profile and the internal approval hook.
type AuthHandler struct {
	svc *auth.Service
	// secureCookies toggles the Secure attribute; false only in dev where
	// the service is reached over plain HTTP.
	secureCookies bool
}

func NewAuthHandler(svc *auth.Service, secureCookies bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookies: secureCookies}
}

// SignUp handles POST /api/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user registered, pending approval")

	response.Created(w, dto.SignUpResponse{
		Message: "Account created successfully. Please wait for admin approval.",
		User:    dto.NewRegisteredUserView(res.User),
	})
}

// SignIn handles POST /api/signin. On success the session token is both
// returned in the body and set as the auth-token cookie, with matching
// lifetimes.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.SignIn(r.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	security.SetSessionCookie(w, res.Token, res.TTL, h.secureCookies)

	response.OK(w, dto.SignInResponse{
		Message: "Sign in successful",
		User:    dto.NewUserView(res.User),
		Token:   res.Token,
	})
}

// SignOut handles POST /api/signout. It only clears the cookie; tokens
// are stateless and expire on their own.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	security.ClearSessionCookie(w, h.secureCookies)
	response.OK(w, dto.SignOutResponse{Message: "Signed out"})
}

// Me handles GET /api/me for the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeResponse{User: dto.NewUserView(u)})
}

// Approve handles POST /internal/users/{id}/approve, guarded by the
// internal shared secret.
func (h *AuthHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ApproveResponse{
		Message: "User approved",
		User:    dto.NewUserView(u),
	})
}
