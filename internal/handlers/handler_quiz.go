package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
	"github.com/quizforum/quizforum-backend/internal/middleware"
)

// maxQuizImageBytes caps uploaded quiz images at 5 MiB, matching the
// product's original upload limit.
const maxQuizImageBytes = 5 << 20

// quizHandler handles quiz post CRUD.
type quizHandler struct {
	quizService portssvc.QuizSvcFacade
}

func newQuizHandler(qs portssvc.QuizSvcFacade) *quizHandler {
	return &quizHandler{quizService: qs}
}

// registerQuizRoutes registers all quiz routes on the authenticated group.
func registerQuizRoutes(rg *gin.RouterGroup, quizService portssvc.QuizSvcFacade) {
	h := newQuizHandler(quizService)

	quizzes := rg.Group("/quizzes")
	{
		quizzes.POST("", h.createQuiz)
		quizzes.GET("", h.listQuizzes)
		quizzes.GET("/:quizID", h.getQuiz)
		quizzes.PATCH("/:quizID", h.updateQuiz)
		quizzes.DELETE("/:quizID", h.deleteQuiz)
	}
}

// createQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz post owned by the current member. Multipart
// @Description form: title, content and an image file part named "imageURL".
// @Tags quizzes
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /quizzes [post]
func (h *quizHandler) createQuiz(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.CreateQuizRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("imageURL")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quiz image is required"})
		return
	}
	if fileHeader.Size > maxQuizImageBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quiz image exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read uploaded image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxQuizImageBytes+1))
	if err != nil {
		logger.Error("Failed to read uploaded image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read uploaded image"})
		return
	}

	quiz, err := h.quizService.CreateQuiz(
		c.Request.Context(),
		memberID,
		req,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		image,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Quiz created", slog.String("quiz_id", quiz.QuizID))
	c.JSON(http.StatusCreated, dto.ToQuizResponse(quiz))
}

// listQuizzes godoc
// @Summary List quizzes
// @Description Lists all live (non-deleted) quizzes, newest first.
// @Tags quizzes
// @Produce json
// @Success 200 {object} dto.ListQuizzesResponse
// @Security BearerAuth
// @Router /quizzes [get]
func (h *quizHandler) listQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuizzesResponse(quizzes))
}

// getQuiz godoc
// @Summary Get a quiz
// @Tags quizzes
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quizID} [get]
func (h *quizHandler) getQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuizByID(c.Request.Context(), c.Param("quizID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuizResponse(quiz))
}

// updateQuiz godoc
// @Summary Update a quiz
// @Description Partial update; only the owner may update. Unspecified fields
// @Description keep their previous values.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param quiz body dto.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} dto.QuizResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quizID} [patch]
func (h *quizHandler) updateQuiz(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	quiz, err := h.quizService.UpdateQuiz(c.Request.Context(), c.Param("quizID"), req, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuizResponse(quiz))
}

// deleteQuiz godoc
// @Summary Delete a quiz
// @Description Soft-deletes; only the owner may delete. Re-deleting an
// @Description already-deleted quiz is a no-op success.
// @Tags quizzes
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quizID} [delete]
func (h *quizHandler) deleteQuiz(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	if err := h.quizService.DeleteQuiz(c.Request.Context(), c.Param("quizID"), memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "quiz deleted"})
}
