package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// quizCommentHandler handles comments on quiz posts.
type quizCommentHandler struct {
	commentService portssvc.QuizCommentSvcFacade
}

func newQuizCommentHandler(cs portssvc.QuizCommentSvcFacade) *quizCommentHandler {
	return &quizCommentHandler{commentService: cs}
}

// registerQuizCommentRoutes registers the comment sub-resource under quizzes.
func registerQuizCommentRoutes(rg *gin.RouterGroup, commentService portssvc.QuizCommentSvcFacade) {
	h := newQuizCommentHandler(commentService)

	comments := rg.Group("/quizzes/:quizID/quizComments")
	{
		comments.POST("", h.createComment)
		comments.GET("", h.listComments)
		comments.PATCH("/:commentID", h.updateComment)
		comments.DELETE("/:commentID", h.deleteComment)
	}
}

// createComment godoc
// @Summary Comment on a quiz
// @Description Adds a comment; the parent quiz must exist and not be deleted.
// @Tags quizComments
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param comment body dto.CreateQuizCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} ErrorResponse "Quiz absent or deleted"
// @Security BearerAuth
// @Router /quizzes/{quizID}/quizComments [post]
func (h *quizCommentHandler) createComment(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.CreateQuizCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.CreateQuizComment(c.Request.Context(), c.Param("quizID"), memberID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuizCommentResponse(comment))
}

// listComments godoc
// @Summary List comments on a quiz
// @Tags quizComments
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.ListCommentsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quizID}/quizComments [get]
func (h *quizCommentHandler) listComments(c *gin.Context) {
	comments, err := h.commentService.ListQuizComments(c.Request.Context(), c.Param("quizID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuizCommentsResponse(comments))
}

// updateComment godoc
// @Summary Update a quiz comment
// @Description Only the author may update.
// @Tags quizComments
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param commentID path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "Fields to update"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Comment absent or under a different quiz"
// @Security BearerAuth
// @Router /quizzes/{quizID}/quizComments/{commentID} [patch]
func (h *quizCommentHandler) updateComment(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.UpdateQuizComment(c.Request.Context(), c.Param("quizID"), c.Param("commentID"), req, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuizCommentResponse(comment))
}

// deleteComment godoc
// @Summary Delete a quiz comment
// @Description Soft-deletes; only the author may delete.
// @Tags quizComments
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quizID}/quizComments/{commentID} [delete]
func (h *quizCommentHandler) deleteComment(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteQuizComment(c.Request.Context(), c.Param("quizID"), c.Param("commentID"), memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted"})
}
