package services

import (
	"context"
	"time"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// MemberSvcFacade defines member account operations.
type MemberSvcFacade interface {
	// Register creates a new member. Fails with apperrors.ErrDuplicate on a
	// username or nickname collision and apperrors.ErrValidation when the
	// password contains the username.
	Register(ctx context.Context, req dto.SignUpRequest) (*domain.Member, error)

	// Authenticate verifies credentials and returns the member. Fails with
	// apperrors.ErrUnauthorized on unknown username or password mismatch.
	Authenticate(ctx context.Context, username, password string) (*domain.Member, error)

	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error)

	// ChangePassword re-verifies the current password before applying the new
	// one. Current-password mismatch fails with apperrors.ErrValidation.
	ChangePassword(ctx context.Context, memberID, currentPassword, newPassword string) error

	// StoreRefreshToken persists the hash of a freshly issued refresh token.
	StoreRefreshToken(ctx context.Context, memberID, refreshTokenHash string, expiryTime time.Time) error

	// SignOut clears the stored refresh-token hash, revoking every
	// outstanding refresh token. Idempotent.
	SignOut(ctx context.Context, memberID string) error
}
