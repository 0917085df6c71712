package domain

import "time"

// RoleAdmin is the only role assigned at registration. Accounts carry it
// from creation; there is no self-service role selection.
const RoleAdmin = "admin"

// User is an admin-console account. PasswordHash is populated only by
// directory reads that explicitly request the secret; the default
// projections leave it empty so it can never leak into a response by
// accident.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsApproved   bool
	CreatedAt    time.Time
}
