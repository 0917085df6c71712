package auth

import (
	"context"
	"strings"
	"time"

	"github.com/admindash/auth-service/internal/domain"
)

type SignInResult struct {
	User  domain.User
	Token string
	// TTL is the issued token's lifetime; the transport layer must use it
	// verbatim for the cookie Max-Age so both expire together.
	TTL time.Duration
}

// SignIn verifies credentials, enforces the approval gate and issues a
// session token. The check order is fixed (missing fields, lookup,
// password, approval, issue) because reordering changes what a failed
// attempt reveals:
//   - unknown email and wrong password collapse into one indistinguishable
//     outcome (no account enumeration)
//   - the approval gate is only reported to callers who proved they know
//     the password
func (s *Service) SignIn(ctx context.Context, email, password string, rememberMe bool) (SignInResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return SignInResult{}, domain.ErrCredentialsMissing()
	}

	u, err := s.users.GetByEmailWithPassword(ctx, email)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return SignInResult{}, domain.ErrInvalidCredentials()
		}
		return SignInResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return SignInResult{}, domain.ErrInvalidCredentials()
	}

	if !u.IsApproved {
		return SignInResult{}, domain.ErrApprovalPending()
	}

	ttl := s.sessionTTLFor(rememberMe)
	tok, err := s.signer.SignSessionToken(u.ID, u.Email, u.Role, ttl)
	if err != nil {
		return SignInResult{}, err
	}

	s.audit("user_signed_in", map[string]string{
		"user_id":     u.ID,
		"remember_me": boolStr(rememberMe),
	})

	u.PasswordHash = ""
	return SignInResult{User: u, Token: tok, TTL: ttl}, nil
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
