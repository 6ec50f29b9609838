package dto

import (
	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// CreateQuizCommentRequest carries a new quiz comment (min 1 char).
type CreateQuizCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CreateDebateCommentRequest carries a new debate comment (5-50 chars per the
// original product rules).
type CreateDebateCommentRequest struct {
	Content string `json:"content" binding:"required,min=5,max=50"`
}

// UpdateCommentRequest is a partial update shared by both comment families.
type UpdateCommentRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1"`
}

// CommentResponse is the public view of a comment of either family.
type CommentResponse struct {
	CommentID string `json:"commentID"`
	ParentID  string `json:"parentID"`
	AuthorID  string `json:"authorID"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListCommentsResponse wraps a comment list.
type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// ToQuizCommentResponse converts a domain.QuizComment to its public view.
func ToQuizCommentResponse(c *domain.QuizComment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		ParentID:  c.QuizID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(timeLayout),
		UpdatedAt: c.UpdatedAt.Format(timeLayout),
	}
}

// ToDebateCommentResponse converts a domain.DebateComment to its public view.
func ToDebateCommentResponse(c *domain.DebateComment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		ParentID:  c.DebateID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(timeLayout),
		UpdatedAt: c.UpdatedAt.Format(timeLayout),
	}
}

// ToListQuizCommentsResponse converts quiz comments to the list DTO.
func ToListQuizCommentsResponse(comments []domain.QuizComment) ListCommentsResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = ToQuizCommentResponse(&comments[i])
	}
	return ListCommentsResponse{Comments: out}
}

// ToListDebateCommentsResponse converts debate comments to the list DTO.
func ToListDebateCommentsResponse(comments []domain.DebateComment) ListCommentsResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = ToDebateCommentResponse(&comments[i])
	}
	return ListCommentsResponse{Comments: out}
}
