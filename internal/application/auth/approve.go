package auth

import (
	"context"
	"strings"

	"github.com/admindash/auth-service/internal/domain"
)

// Approve flips a pending account to approved. It is invoked from the
// internal operator endpoint, never from the sign-in path. Approving an
// already-approved account is a no-op success, so the call is safe to
// retry.
func (s *Service) Approve(ctx context.Context, userID string) (domain.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	u, err := s.users.Approve(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	s.audit("user_approved", map[string]string{
		"user_id": u.ID,
		"email":   u.Email,
	})

	if s.pub != nil {
		_ = s.pub.PublishUserApproved(ctx, UserApprovedEvent{
			UserID: u.ID,
			Email:  u.Email,
		})
	}

	u.PasswordHash = ""
	return u, nil
}
