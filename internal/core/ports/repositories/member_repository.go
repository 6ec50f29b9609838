package repositories

import (
	"context"
	"time"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// MemberRepository defines persistence operations for members (the credential
// store). Find* methods exclude soft-deleted rows.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.Member) error
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error)
	FindMemberByNickname(ctx context.Context, nickname string) (*domain.Member, error)
	UpdatePassword(ctx context.Context, memberID string, passwordHash string, updatedAt time.Time) error

	// UpdateRefreshToken stores the hash of the newest refresh token together
	// with its expiry; ClearRefreshToken nulls both (sign-out). Clearing an
	// already-clear token is a no-op success.
	UpdateRefreshToken(ctx context.Context, memberID string, refreshTokenHash string, expiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, memberID string) error
}
