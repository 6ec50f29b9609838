package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// debateCommentHandler handles comments on debate threads.
type debateCommentHandler struct {
	commentService portssvc.DebateCommentSvcFacade
}

func newDebateCommentHandler(cs portssvc.DebateCommentSvcFacade) *debateCommentHandler {
	return &debateCommentHandler{commentService: cs}
}

// registerDebateCommentRoutes registers the comment sub-resource under debates.
func registerDebateCommentRoutes(rg *gin.RouterGroup, commentService portssvc.DebateCommentSvcFacade) {
	h := newDebateCommentHandler(commentService)

	comments := rg.Group("/debates/:debateID/comments")
	{
		comments.POST("", h.createComment)
		comments.GET("", h.listComments)
		comments.PATCH("/:commentID", h.updateComment)
		comments.DELETE("/:commentID", h.deleteComment)
	}
}

// createComment godoc
// @Summary Comment on a debate
// @Description Adds a comment; the parent debate must exist and not be deleted.
// @Tags debateComments
// @Accept json
// @Produce json
// @Param debateID path string true "Debate ID"
// @Param comment body dto.CreateDebateCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} ErrorResponse "Debate absent or deleted"
// @Security BearerAuth
// @Router /debates/{debateID}/comments [post]
func (h *debateCommentHandler) createComment(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.CreateDebateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.CreateDebateComment(c.Request.Context(), c.Param("debateID"), memberID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebateCommentResponse(comment))
}

// listComments godoc
// @Summary List comments on a debate
// @Tags debateComments
// @Produce json
// @Param debateID path string true "Debate ID"
// @Success 200 {object} dto.ListCommentsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debates/{debateID}/comments [get]
func (h *debateCommentHandler) listComments(c *gin.Context) {
	comments, err := h.commentService.ListDebateComments(c.Request.Context(), c.Param("debateID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebateCommentsResponse(comments))
}

// updateComment godoc
// @Summary Update a debate comment
// @Description Only the author may update.
// @Tags debateComments
// @Accept json
// @Produce json
// @Param debateID path string true "Debate ID"
// @Param commentID path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "Fields to update"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Comment absent or under a different debate"
// @Security BearerAuth
// @Router /debates/{debateID}/comments/{commentID} [patch]
func (h *debateCommentHandler) updateComment(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.UpdateDebateComment(c.Request.Context(), c.Param("debateID"), c.Param("commentID"), req, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDebateCommentResponse(comment))
}

// deleteComment godoc
// @Summary Delete a debate comment
// @Description Soft-deletes; only the author may delete.
// @Tags debateComments
// @Produce json
// @Param debateID path string true "Debate ID"
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /debates/{debateID}/comments/{commentID} [delete]
func (h *debateCommentHandler) deleteComment(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteDebateComment(c.Request.Context(), c.Param("debateID"), c.Param("commentID"), memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted"})
}
