package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_UnwrapAndIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := ErrDBUnavailable(cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if !Is(err, "db_unavailable") {
		t.Fatalf("expected code match")
	}
	if Is(err, "user_not_found") {
		t.Fatalf("unexpected code match")
	}
	if Is(errors.New("plain"), "db_unavailable") {
		t.Fatalf("plain errors must not match any code")
	}
}

func TestError_IsMatchesThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create user: %w", ErrEmailAlreadyExists())
	if !Is(wrapped, "email_already_exists") {
		t.Fatalf("expected code match through fmt wrapping")
	}
}

func TestError_MessagesAreClientSafe(t *testing.T) {
	t.Parallel()

	// These strings are API surface; clients and the frontend match on them.
	cases := map[string]*Error{
		"All fields are required":                ErrSignupFieldsMissing(),
		"Email and password are required":        ErrCredentialsMissing(),
		"Invalid email or password":              ErrInvalidCredentials(),
		"Your account is pending admin approval": ErrApprovalPending(),
		"User with this email already exists":    ErrEmailAlreadyExists(),
	}
	for want, err := range cases {
		if err.Message != want {
			t.Fatalf("expected %q, got %q", want, err.Message)
		}
	}
}

func TestError_KindMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *Error
		kind ErrKind
	}{
		{ErrSignupFieldsMissing(), KindValidation},
		{ErrInvalidCredentials(), KindAuth},
		{ErrApprovalPending(), KindForbidden},
		{ErrUserNotFound(), KindNotFound},
		{ErrEmailAlreadyExists(), KindConflict},
		{ErrRateLimited(), KindRateLimited},
		{ErrDBUnavailable(nil), KindInfrastructure},
		{ErrHashFailed(nil), KindInternal},
	}
	for _, tc := range cases {
		if tc.err.Kind != tc.kind {
			t.Fatalf("%s: expected kind %s, got %s", tc.err.Code, tc.kind, tc.err.Kind)
		}
	}
}
