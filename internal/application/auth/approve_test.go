package auth

import (
	"context"
	"testing"
)

func TestApprove_UnknownUser_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _, _ := newSvcForTest(t)

	_, err := svc.Approve(context.Background(), "ghost")
	requireErrCode(t, err, "user_not_found")

	_, err = svc.Approve(context.Background(), "  ")
	requireErrCode(t, err, "user_not_found")
}

func TestApprove_FlipsPendingAccount(t *testing.T) {
	t.Parallel()

	svc, users, _, _, pub, audits := newSvcForTest(t)
	u := approvedUser()
	u.IsApproved = false
	users.add(u)

	got, err := svc.Approve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if !got.IsApproved {
		t.Fatalf("expected approved user")
	}
	if got.PasswordHash != "" {
		t.Fatalf("result must not carry the password hash")
	}

	if len(pub.approved) != 1 || pub.approved[0].UserID != "u1" {
		t.Fatalf("expected approval event, got %+v", pub.approved)
	}
	if len(*audits) != 1 || (*audits)[0].action != "user_approved" {
		t.Fatalf("expected user_approved audit, got %+v", *audits)
	}

	// approval unlocks sign-in
	if _, err := svc.SignIn(context.Background(), "ada@example.com", "secret1", false); err != nil {
		t.Fatalf("expected sign-in after approval, got %v", err)
	}
}

func TestApprove_AlreadyApproved_Idempotent(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _, _ := newSvcForTest(t)
	users.add(approvedUser())

	got, err := svc.Approve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("approving an approved account must succeed, got %v", err)
	}
	if !got.IsApproved {
		t.Fatalf("expected approved user")
	}
}

func TestGetUserByID_Sanitized(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _, _ := newSvcForTest(t)
	users.add(approvedUser())

	u, err := svc.GetUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("profile reads must never expose the hash")
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}

	_, err = svc.GetUserByID(context.Background(), "ghost")
	requireErrCode(t, err, "user_not_found")
}
