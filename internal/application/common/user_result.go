package common

import "time"

// UserResult is the authenticated view of a user. The password hash never
// leaves the domain layer.
type UserResult struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatarUrl"`
	HeightCM  *int      `json:"heightCm,omitempty"`
	ReachCM   *int      `json:"reachCm,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUserResult is what other users see: no email, no profile
// measurements.
type PublicUserResult struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
}
