package domain

import "time"

// Profile is the application-level user record, distinct from the identity.
type Profile struct {
	ID        string
	UserID    string
	FullName  string
	Email     string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
