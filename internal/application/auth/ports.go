package auth

import (
	"context"
	"time"

	"github.com/admindash/auth-service/internal/domain"
)

/*
UserDirectory
-------------
Persistence port for admin accounts. Only describes WHAT the auth
service needs, not HOW it's stored.

GetByEmail and GetByID return sanitized records (empty PasswordHash).
GetByEmailWithPassword is the only read that carries the secret hash,
and exists solely for credential verification.
*/
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)

	// Create enforces email uniqueness; a violation surfaces as the same
	// conflict error the pre-check uses, so races at insert time are
	// indistinguishable from pre-check detection.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Approve flips isApproved to true. It is the only mutation in this
	// service; authentication never writes.
	Approve(ctx context.Context, id string) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2. Compare returns nil on match.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies session tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignSessionToken(userID, email, role string, ttl time.Duration) (string, error)
	VerifySessionToken(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes lifecycle events to the broker. A notifier service consumes
these; registration and approval do not block on delivery.
*/
type EventPublisher interface {
	PublishRegistrationSubmitted(ctx context.Context, evt RegistrationSubmittedEvent) error
	PublishUserApproved(ctx context.Context, evt UserApprovedEvent) error
}

type RegistrationSubmittedEvent struct {
	UserID   string
	FullName string
	Email    string
}

type UserApprovedEvent struct {
	UserID string
	Email  string
}
