package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/admindash/auth-service/internal/domain"
)

var validate = validator.New()

// -------- Sign up --------

type SignUpRequest struct {
	FullName string `json:"fullName" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate enforces the two validation tiers in order: presence of all
// fields (one generic message, checked before anything else) and then
// record-level rules, whose per-field messages are concatenated for
// display.
func (r *SignUpRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)

	if r.FullName == "" || r.Email == "" || r.Password == "" {
		return domain.ErrSignupFieldsMissing()
	}

	if err := validate.Struct(r); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// -------- Sign in --------

type SignInRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

func (r *SignInRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	if r.Email == "" || r.Password == "" {
		return domain.ErrCredentialsMissing()
	}
	return nil
}

// formatValidationErrors turns validator errors into user-friendly field
// messages, joined the way the signup endpoint reports them.
func formatValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrRecordInvalid("Invalid request")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.ErrRecordInvalid(strings.Join(msgs, ", "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FullName":
		return "Full name is required"
	case "Email":
		if fe.Tag() == "email" {
			return "Please provide a valid email address"
		}
		return "Email is required"
	case "Password":
		if fe.Tag() == "min" {
			return fmt.Sprintf("Password must be at least %s characters", fe.Param())
		}
		return "Password is required"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
