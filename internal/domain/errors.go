package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindInfrastructure ErrKind = "infrastructure" // 500, details logged only
	KindInternal       ErrKind = "internal"       // 500, details logged only
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "Invalid request body", cause)
}

// ErrSignupFieldsMissing covers any absent registration field. The client
// message is intentionally generic across fields.
func ErrSignupFieldsMissing() *Error {
	return New(KindValidation, "signup_fields_missing", "All fields are required")
}

func ErrCredentialsMissing() *Error {
	return New(KindValidation, "credentials_missing", "Email and password are required")
}

// ErrRecordInvalid carries the concatenated per-field messages from record
// validation, already safe for display.
func ErrRecordInvalid(msg string) *Error {
	return New(KindValidation, "record_invalid", msg)
}

// ----------------------
// Auth errors (401)
// ----------------------

// ErrInvalidCredentials is returned for BOTH unknown email and wrong
// password. The merged outcome is an enumeration-resistance property;
// never split it into distinguishable errors.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid email or password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "Authentication required")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "Invalid or expired token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "Invalid or expired token")
}

// ----------------------
// Forbidden (403)
// ----------------------

// ErrApprovalPending is distinguishable from invalid credentials on
// purpose: the caller has already proven they know the password.
func ErrApprovalPending() *Error {
	return New(KindForbidden, "approval_pending", "Your account is pending admin approval")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "User not found")
}

// ----------------------
// Conflict (409)
// ----------------------

// ErrEmailAlreadyExists is the single conflict outcome for duplicate
// registration, whether detected by the pre-check lookup or by the
// directory's uniqueness constraint at insert time.
func ErrEmailAlreadyExists() *Error {
	return New(KindConflict, "email_already_exists", "User with this email already exists")
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited() *Error {
	return New(KindRateLimited, "rate_limited", "Too many requests")
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
