package dto

import (
	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// SignUpRequest carries the fields for member registration.
// Username/password bounds mirror the product's original Joi schemas.
type SignUpRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=2,max=15"`
	Nickname string `json:"nickname" binding:"required,min=2,max=15"`
	Password string `json:"password" binding:"required,alphanum,min=5,max=20"`
}

// SignInRequest carries login credentials.
type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest carries a password change. The current password must
// be re-proven even on an authenticated session.
type UpdatePasswordRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,alphanum,min=5,max=20"`
}

// MemberResponse is the public view of a member. Password and refresh-token
// hashes are never serialized.
type MemberResponse struct {
	MemberID string `json:"memberID"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// ToMemberResponse converts a domain.Member to its public view.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID: m.MemberID,
		Username: m.Username,
		Nickname: m.Nickname,
	}
}
