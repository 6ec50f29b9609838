package dto

import (
	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// CreateQuizRequest carries the text fields of a new quiz. The image arrives
// as a separate multipart file part named "imageURL".
type CreateQuizRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// UpdateQuizRequest is a partial update; nil fields retain their previous
// values.
type UpdateQuizRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	ImageURL *string `json:"imageURL" binding:"omitempty,url"`
}

// QuizResponse is the public view of a quiz.
type QuizResponse struct {
	QuizID    string `json:"quizID"`
	OwnerID   string `json:"ownerID"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageURL"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListQuizzesResponse wraps the quiz list.
type ListQuizzesResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// ToQuizResponse converts a domain.Quiz to its public view.
func ToQuizResponse(q *domain.Quiz) QuizResponse {
	return QuizResponse{
		QuizID:    q.QuizID,
		OwnerID:   q.OwnerID,
		Title:     q.Title,
		Content:   q.Content,
		ImageURL:  q.ImageURL,
		CreatedAt: q.CreatedAt.Format(timeLayout),
		UpdatedAt: q.UpdatedAt.Format(timeLayout),
	}
}

// ToListQuizzesResponse converts a slice of domain.Quiz to the list DTO.
func ToListQuizzesResponse(quizzes []domain.Quiz) ListQuizzesResponse {
	out := make([]QuizResponse, len(quizzes))
	for i := range quizzes {
		out[i] = ToQuizResponse(&quizzes[i])
	}
	return ListQuizzesResponse{Quizzes: out}
}
