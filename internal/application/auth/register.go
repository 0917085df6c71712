package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/admindash/auth-service/internal/domain"
)

type RegisterResult struct {
	User domain.User
}

// Register creates an admin account awaiting approval. The pre-check
// lookup gives friendly conflicts in the common case, but the directory's
// uniqueness constraint is the arbiter: a concurrent registration losing
// the race at insert time surfaces the exact same conflict error.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (RegisterResult, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if fullName == "" || email == "" || password == "" {
		return RegisterResult{}, domain.ErrSignupFieldsMissing()
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return RegisterResult{}, domain.ErrEmailAlreadyExists()
	case !domain.Is(err, "user_not_found"):
		return RegisterResult{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsApproved:   false,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return RegisterResult{}, err
	}

	s.audit("user_registered", map[string]string{
		"user_id": created.ID,
		"email":   created.Email,
	})

	// Best-effort notification; registration does not fail on broker trouble.
	if s.pub != nil {
		_ = s.pub.PublishRegistrationSubmitted(ctx, RegistrationSubmittedEvent{
			UserID:   created.ID,
			FullName: created.FullName,
			Email:    created.Email,
		})
	}

	// Never hand the hash back to the transport layer.
	created.PasswordHash = ""
	return RegisterResult{User: created}, nil
}
