package postgres

import "time"

type userRow struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsApproved   bool
	CreatedAt    time.Time
}
