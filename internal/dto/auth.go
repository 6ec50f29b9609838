package dto

// SignInResponse is returned on successful login. The refresh token also
// travels in an HTTP-only cookie; the body copy exists for non-browser
// clients.
type SignInResponse struct {
	Message      string         `json:"message"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Member       MemberResponse `json:"member"`
}

// RefreshRequest carries both tokens for the explicit refresh endpoint.
// The access token may be expired; it is only decoded for identity recovery.
type RefreshRequest struct {
	AccessToken  string `json:"accessToken" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshResponse returns a freshly rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse is a generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
