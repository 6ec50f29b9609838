package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/platform/config"
	"github.com/quizforum/quizforum-backend/internal/utils"
)

// tokenService implements TokenSvcFacade for access and refresh tokens. It
// needs the config (secrets and expiry policy) and the member service (to
// load members and persist rotated refresh-token hashes).
type tokenService struct {
	cfg           *config.Config
	memberService portssvc.MemberSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, memberService portssvc.MemberSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:           cfg,
		memberService: memberService,
	}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, member *domain.Member) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiry)
	token, err := utils.GenerateJWT(member.Username, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) GenerateRefreshToken(ctx context.Context, member *domain.Member) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiry)
	token, err := utils.GenerateJWT(member.Username, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) VerifyAccessToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.AccessTokenSecret)
	if err != nil {
		// jwt.ErrTokenExpired stays in the chain so the auth middleware can
		// branch into the refresh flow.
		return "", fmt.Errorf("access token rejected: %w", err)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *tokenService) DecodeAccessTokenUnverified(tokenString string) (string, error) {
	claims, err := utils.DecodeJWTUnverified(tokenString)
	if err != nil {
		return "", fmt.Errorf("malformed access token: %w", apperrors.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

// validateRefreshToken checks a presented refresh token against the member's
// stored hash. The hash comparison runs before any signature verification:
// a cleared or rotated hash revokes every outstanding token immediately,
// regardless of the expiry each token carries.
func (s *tokenService) validateRefreshToken(member *domain.Member, refreshToken string) error {
	if member.RefreshTokenHash == "" || member.RefreshTokenExpiryTime == nil {
		return fmt.Errorf("no live session for member: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CompareRefreshTokenHash(refreshToken, member.RefreshTokenHash) {
		return fmt.Errorf("refresh token revoked: %w", apperrors.ErrUnauthorized)
	}
	if time.Now().After(*member.RefreshTokenExpiryTime) {
		return apperrors.ErrRefreshTokenExpired
	}

	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperrors.ErrRefreshTokenExpired
		}
		return fmt.Errorf("refresh token rejected: %w", apperrors.ErrUnauthorized)
	}
	if claims.Subject != member.Username {
		return fmt.Errorf("refresh token subject mismatch: %w", apperrors.ErrUnauthorized)
	}
	return nil
}

func (s *tokenService) RefreshSession(ctx context.Context, accessToken, refreshToken string) (*domain.Member, string, string, error) {
	// Decode, don't verify: the access token is expected to be expired here.
	// The recovered username only tells us whose stored hash to check.
	username, err := s.DecodeAccessTokenUnverified(accessToken)
	if err != nil {
		return nil, "", "", err
	}

	member, err := s.memberService.GetMemberByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", "", apperrors.ErrNotFound
		}
		return nil, "", "", fmt.Errorf("failed to load member for refresh: %w", err)
	}

	if err := s.validateRefreshToken(member, refreshToken); err != nil {
		return nil, "", "", err
	}

	newAccessToken, _, err := s.GenerateAccessToken(ctx, member)
	if err != nil {
		return nil, "", "", err
	}

	// Rotate on renew: issue a fresh refresh token and persist its hash
	// before responding, so the presented token is single-use.
	//
	// Known race: two concurrent requests holding the same expired access
	// token can both pass validation before either persists the rotated
	// hash; the later write wins and the earlier client's new refresh token
	// is silently revoked. Acceptable on this path, left as is.
	newRefreshToken, refreshExpiry, err := s.GenerateRefreshToken(ctx, member)
	if err != nil {
		return nil, "", "", err
	}
	if err := s.memberService.StoreRefreshToken(ctx, member.MemberID, utils.HashRefreshToken(newRefreshToken), refreshExpiry); err != nil {
		return nil, "", "", fmt.Errorf("failed to persist rotated refresh token: %w", err)
	}

	return member, newAccessToken, newRefreshToken, nil
}
