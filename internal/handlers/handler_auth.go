package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
	"github.com/quizforum/quizforum-backend/internal/middleware"
	"github.com/quizforum/quizforum-backend/internal/platform/config"
	"github.com/quizforum/quizforum-backend/internal/utils"
)

// authHandler handles registration, sessions and password changes.
type authHandler struct {
	memberService portssvc.MemberSvcFacade
	tokenService  portssvc.TokenSvcFacade
	cfg           *config.Config
}

func newAuthHandler(cfg *config.Config, ms portssvc.MemberSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		memberService: ms,
		tokenService:  ts,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the public auth routes. Credential-bearing
// endpoints are rate limited per IP.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.Member, services.Token)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	rg.POST("/sign-up", limitMiddleware, h.signUp)
	rg.POST("/sign-in", limitMiddleware, h.signIn)
	rg.POST("/refresh", h.refresh)
}

// registerSessionRoutes sets up the auth routes that require a live session.
func registerSessionRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.Member, services.Token)

	rg.POST("/sign-out", h.signOut)
	rg.PATCH("/pwupdate", h.updatePassword)
}

// signUp godoc
// @Summary Register a new member
// @Description Creates a member account with a unique username and nickname.
// @Tags auth
// @Accept json
// @Produce json
// @Param signUp body dto.SignUpRequest true "Registration details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate username or nickname"
// @Router /sign-up [post]
func (h *authHandler) signUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	member, err := h.memberService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Member registered", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusOK, gin.H{
		"message": "sign-up completed",
		"data":    dto.ToMemberResponse(member),
	})
}

// signIn godoc
// @Summary Member login
// @Description Verifies credentials, issues an access/refresh token pair and
// @Description sets both as cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param signIn body dto.SignInRequest true "Login credentials"
// @Success 200 {object} dto.SignInResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign-in [post]
func (h *authHandler) signIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	member, err := h.memberService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Absent user and wrong password answer the same way; the login-time
		// convention is 400, not 401.
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid username or password"})
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), member)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate token"})
		return
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), member)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate token"})
		return
	}

	if err := h.memberService.StoreRefreshToken(c.Request.Context(), member.MemberID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		logger.Error("Failed to store refresh token hash", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to establish session"})
		return
	}

	middleware.SetAuthCookies(c, h.cfg, accessToken, refreshToken)
	logger.Info("Member signed in", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusOK, dto.SignInResponse{
		Message:      "login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Member:       dto.ToMemberResponse(member),
	})
}

// refresh godoc
// @Summary Exchange an expired access token for a new pair
// @Description Validates the refresh token against the stored hash, rotates
// @Description it and returns a fresh access/refresh pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Token pair"
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} ErrorResponse
// @Router /refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	member, newAccess, newRefresh, err := h.tokenService.RefreshSession(c.Request.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		middleware.ClearAuthCookies(c, h.cfg)
		respondError(c, err)
		return
	}

	middleware.SetAuthCookies(c, h.cfg, newAccess, newRefresh)
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Session refreshed", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
	})
}

// signOut godoc
// @Summary Sign out
// @Description Clears the session cookies and revokes the stored refresh
// @Description token hash. Safe to call repeatedly.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sign-out [post]
func (h *authHandler) signOut(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	if err := h.memberService.SignOut(c.Request.Context(), memberID); err != nil {
		respondError(c, err)
		return
	}

	middleware.ClearAuthCookies(c, h.cfg)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "signed out"})
}

// updatePassword godoc
// @Summary Change password
// @Description Re-verifies the current password before applying the new one.
// @Tags auth
// @Accept json
// @Produce json
// @Param pwupdate body dto.UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Current password mismatch"
// @Security BearerAuth
// @Router /pwupdate [patch]
func (h *authHandler) updatePassword(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.memberService.ChangePassword(c.Request.Context(), memberID, req.Password, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
