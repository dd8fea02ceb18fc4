package domain

import "time"

// Identity is the authenticated principal for the current session.
type Identity struct {
	ID               string
	Email            string
	EmailConfirmedAt *time.Time
}

// EmailConfirmed reports whether the identity verified its email address.
func (i *Identity) EmailConfirmed() bool {
	return i != nil && i.EmailConfirmedAt != nil && !i.EmailConfirmedAt.IsZero()
}
