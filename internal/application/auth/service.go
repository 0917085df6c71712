package auth

import (
	"time"
)

type Service struct {
	users  UserDirectory
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	sessionTTL  time.Duration
	rememberTTL time.Duration
	audit       func(action string, fields map[string]string)
}

type Config struct {
	// SessionTTL is the token/cookie lifetime for plain sign-ins,
	// RememberTTL the lifetime when the client sets rememberMe.
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

func NewService(
	users UserDirectory,
	hasher PasswordHasher,
	signer TokenSigner,
	pub EventPublisher,
	cfg Config,
) *Service {
	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	rememberTTL := cfg.RememberTTL
	if rememberTTL <= 0 {
		rememberTTL = 30 * 24 * time.Hour
	}
	return &Service{
		users:  users,
		hasher: hasher,
		signer: signer,
		pub:    pub,
		audit:  func(string, map[string]string) {},

		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// sessionTTLFor maps the rememberMe flag to a lifetime. Token expiry and
// cookie Max-Age are both derived from this single value.
func (s *Service) sessionTTLFor(rememberMe bool) time.Duration {
	if rememberMe {
		return s.rememberTTL
	}
	return s.sessionTTL
}
