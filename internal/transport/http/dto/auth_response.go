package dto

import (
	"time"

	"github.com/admindash/auth-service/internal/domain"
)

// UserView is the sanitized user payload; it structurally cannot carry the
// password hash. CreatedAt is included on registration responses only.
type UserView struct {
	ID         string     `json:"id"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	IsApproved bool       `json:"isApproved"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// NewUserView maps a domain user to the sign-in projection.
func NewUserView(u domain.User) UserView {
	return UserView{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
	}
}

// NewRegisteredUserView maps a domain user to the registration projection,
// which additionally exposes the creation timestamp.
func NewRegisteredUserView(u domain.User) UserView {
	v := NewUserView(u)
	if !u.CreatedAt.IsZero() {
		created := u.CreatedAt
		v.CreatedAt = &created
	}
	return v
}

// SignUpResponse is returned with 201 on successful registration.
type SignUpResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

// SignInResponse is returned with 200 on successful sign-in. The same
// token is also set as the auth-token cookie.
type SignInResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
	Token   string   `json:"token"`
}

// SignOutResponse confirms cookie clearing.
type SignOutResponse struct {
	Message string `json:"message"`
}

// MeResponse is returned by the authenticated profile endpoint.
type MeResponse struct {
	User UserView `json:"user"`
}

// ApproveResponse is returned by the internal approval endpoint.
type ApproveResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}
