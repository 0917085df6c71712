package auth

import (
	"context"

	"github.com/admindash/auth-service/internal/domain"
)

// GetUserByID loads the sanitized projection for the authenticated caller.
func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}
