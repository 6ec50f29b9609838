package domain

import "time"

// Member represents a registered user of the forum.
// Username and nickname are unique among non-deleted members.
type Member struct {
	MemberID     string `json:"memberID"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// RefreshTokenHash holds the SHA256 hash of the latest refresh token
	// issued at sign-in; cleared on sign-out. Empty means no live session.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
