package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/platform/config"
)

// AuthMiddleware is the per-request auth guard. It resolves the access token
// (Authorization header or cookie) into an authenticated member, running the
// refresh flow when the access token is expired and a refresh cookie is
// present. Terminal outcomes are exactly two: continue with a member attached
// to the request context, or a 401 with both auth cookies cleared. The
// guarded handler never runs on failure.
func AuthMiddleware(cfg *config.Config, memberService portssvc.MemberSvcFacade, tokenService portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		accessToken, ok := extractAccessToken(c, cfg)
		if !ok {
			// A malformed access cookie or a dangling refresh cookie must not
			// outlive the rejection.
			clearAuthCookies(c, cfg)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		username, err := tokenService.VerifyAccessToken(c.Request.Context(), accessToken)
		if err == nil {
			member, lookupErr := memberService.GetMemberByUsername(c.Request.Context(), username)
			if lookupErr != nil {
				logger.Warn("Token subject does not resolve to a member", slog.String("username", username))
				clearAuthCookies(c, cfg)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			attachMember(c, logger, member)
			c.Next()
			return
		}

		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			clearAuthCookies(c, cfg)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Access token expired: exchange it via the refresh flow.
		refreshToken, ok := extractRefreshToken(c, cfg)
		if !ok {
			clearAuthCookies(c, cfg)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		member, newAccess, newRefresh, err := tokenService.RefreshSession(c.Request.Context(), accessToken, refreshToken)
		if err != nil {
			clearAuthCookies(c, cfg)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			case errors.Is(err, apperrors.ErrRefreshTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired, please log in again"})
			default:
				// Covers revoked and malformed refresh tokens plus any
				// storage failure; an auth-path error never crashes the
				// pipeline.
				logger.Warn("Refresh rejected", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "refresh token rejected"})
			}
			return
		}

		SetAuthCookies(c, cfg, newAccess, newRefresh)
		attachMember(c, logger, member)
		c.Next()
	}
}

func attachMember(c *gin.Context, logger *slog.Logger, member *domain.Member) {
	enriched := logger.With(slog.String("member_id", member.MemberID))
	ctx := context.WithValue(c.Request.Context(), memberKey, member)
	ctx = context.WithValue(ctx, loggerCtxKey, enriched)
	c.Request = c.Request.WithContext(ctx)
}

// extractAccessToken reads the access token from the Authorization header,
// falling back to the accessToken cookie. Both carry "Bearer <token>".
func extractAccessToken(c *gin.Context, cfg *config.Config) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		return stripBearer(header)
	}
	if cookie, err := c.Cookie(cfg.AccessTokenCookieName); err == nil && cookie != "" {
		return stripBearer(cookie)
	}
	return "", false
}

func extractRefreshToken(c *gin.Context, cfg *config.Config) (string, bool) {
	cookie, err := c.Cookie(cfg.RefreshTokenCookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	return stripBearer(cookie)
}

func stripBearer(value string) (string, bool) {
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// SetAuthCookies writes both token cookies in "Bearer <token>" form.
func SetAuthCookies(c *gin.Context, cfg *config.Config, accessToken, refreshToken string) {
	c.SetCookie(cfg.AccessTokenCookieName, "Bearer "+accessToken, int(cfg.AccessTokenExpiry.Seconds()), "/", "", cfg.IsProduction, true)
	c.SetCookie(cfg.RefreshTokenCookieName, "Bearer "+refreshToken, int(cfg.RefreshTokenExpiry.Seconds()), "/", "", cfg.IsProduction, true)
}

// clearAuthCookies expires both token cookies so a failed request never
// leaves half-valid credentials client-side.
func clearAuthCookies(c *gin.Context, cfg *config.Config) {
	c.SetCookie(cfg.AccessTokenCookieName, "", -1, "/", "", cfg.IsProduction, true)
	c.SetCookie(cfg.RefreshTokenCookieName, "", -1, "/", "", cfg.IsProduction, true)
}

// ClearAuthCookies is the exported variant used by the sign-out handler.
func ClearAuthCookies(c *gin.Context, cfg *config.Config) {
	clearAuthCookies(c, cfg)
}
