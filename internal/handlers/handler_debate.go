package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// debateHandler handles debate thread CRUD.
type debateHandler struct {
	debateService portssvc.DebateSvcFacade
}

func newDebateHandler(ds portssvc.DebateSvcFacade) *debateHandler {
	return &debateHandler{debateService: ds}
}

// registerDebateRoutes registers all debate routes on the authenticated group.
func registerDebateRoutes(rg *gin.RouterGroup, debateService portssvc.DebateSvcFacade) {
	h := newDebateHandler(debateService)

	debates := rg.Group("/debates")
	{
		debates.POST("", h.createDebate)
		debates.GET("", h.listDebates)
		debates.GET("/:debateID", h.getDebate)
		debates.PATCH("/:debateID", h.updateDebate)
		debates.DELETE("/:debateID", h.deleteDebate)
	}
}

// createDebate godoc
// @Summary Open a debate thread
// @Description Creates a debate owned by the current member, optionally linked
// @Description to a live quiz via quizID.
// @Tags debates
// @Accept json
// @Produce json
// @Param debate body dto.CreateDebateRequest true "Debate"
// @Success 201 {object} dto.DebateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Linked quiz absent or deleted"
// @Security BearerAuth
// @Router /debates [post]
func (h *debateHandler) createDebate(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.CreateDebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debate, err := h.debateService.CreateDebate(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebateResponse(debate))
}

// listDebates godoc
// @Summary List debates
// @Description Lists all live (non-deleted) debates, newest first.
// @Tags debates
// @Produce json
// @Success 200 {object} dto.ListDebatesResponse
// @Security BearerAuth
// @Router /debates [get]
func (h *debateHandler) listDebates(c *gin.Context) {
	debates, err := h.debateService.ListDebates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebatesResponse(debates))
}

// getDebate godoc
// @Summary Get a debate
// @Tags debates
// @Produce json
// @Param debateID path string true "Debate ID"
// @Success 200 {object} dto.DebateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debates/{debateID} [get]
func (h *debateHandler) getDebate(c *gin.Context) {
	debate, err := h.debateService.GetDebateByID(c.Request.Context(), c.Param("debateID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDebateResponse(debate))
}

// updateDebate godoc
// @Summary Update a debate
// @Description Partial update; only the owner may update.
// @Tags debates
// @Accept json
// @Produce json
// @Param debateID path string true "Debate ID"
// @Param debate body dto.UpdateDebateRequest true "Fields to update"
// @Success 200 {object} dto.DebateResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debates/{debateID} [patch]
func (h *debateHandler) updateDebate(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.UpdateDebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debate, err := h.debateService.UpdateDebate(c.Request.Context(), c.Param("debateID"), req, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDebateResponse(debate))
}

// deleteDebate godoc
// @Summary Delete a debate
// @Description Soft-deletes; only the owner may delete. Re-deleting an
// @Description already-deleted debate is a no-op success.
// @Tags debates
// @Produce json
// @Param debateID path string true "Debate ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debates/{debateID} [delete]
func (h *debateHandler) deleteDebate(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	if err := h.debateService.DeleteDebate(c.Request.Context(), c.Param("debateID"), memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "debate deleted"})
}
