package services

import (
	"context"
	"time"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// TokenSvcFacade defines token issuing and the refresh-session flow shared by
// the auth middleware and the explicit /refresh endpoint.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a short-lived JWT with the member's username
	// as subject. Returns the token and its expiry.
	GenerateAccessToken(ctx context.Context, member *domain.Member) (string, time.Time, error)

	// GenerateRefreshToken signs a long-lived JWT under the refresh secret.
	// The caller is responsible for persisting its hash.
	GenerateRefreshToken(ctx context.Context, member *domain.Member) (string, time.Time, error)

	// VerifyAccessToken validates signature and expiry, returning the subject
	// username. An expired token is reported with jwt.ErrTokenExpired in the
	// error chain so callers can branch into the refresh flow.
	VerifyAccessToken(ctx context.Context, tokenString string) (string, error)

	// DecodeAccessTokenUnverified recovers the claimed username from an
	// access token without validating signature or expiry. Identity-recovery
	// only; never authorization.
	DecodeAccessTokenUnverified(tokenString string) (string, error)

	// RefreshSession runs the refresh state machine: decode the (expired)
	// access token, load the member, validate the presented refresh token
	// against the stored hash (hash mismatch means revoked, checked before
	// signature), then rotate: issue a new pair and persist the new hash
	// before returning. Failure modes: apperrors.ErrUnauthorized,
	// apperrors.ErrRefreshTokenExpired, apperrors.ErrNotFound.
	RefreshSession(ctx context.Context, accessToken, refreshToken string) (*domain.Member, string, string, error)
}
