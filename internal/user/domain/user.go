package domain

import "time"

type ID string

// User never carries the raw password; PasswordHash is produced by the hasher.
type User struct {
	ID           ID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
