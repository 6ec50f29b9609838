package dto

import (
	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// CreateDebateRequest carries a new debate thread. QuizID optionally links
// the debate to an existing quiz. Bounds mirror the original product rules:
// title 3-30 chars, content 10-100 chars.
type CreateDebateRequest struct {
	Title   string  `json:"title" binding:"required,min=3,max=30"`
	Content string  `json:"content" binding:"required,min=10,max=100"`
	QuizID  *string `json:"quizID" binding:"omitempty,uuid"`
}

// UpdateDebateRequest is a partial update; nil fields keep previous values.
type UpdateDebateRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=3,max=30"`
	Content *string `json:"content" binding:"omitempty,min=10,max=100"`
}

// DebateResponse is the public view of a debate.
type DebateResponse struct {
	DebateID  string  `json:"debateID"`
	OwnerID   string  `json:"ownerID"`
	QuizID    *string `json:"quizID,omitempty"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ListDebatesResponse wraps the debate list.
type ListDebatesResponse struct {
	Debates []DebateResponse `json:"debates"`
}

// ToDebateResponse converts a domain.Debate to its public view.
func ToDebateResponse(d *domain.Debate) DebateResponse {
	return DebateResponse{
		DebateID:  d.DebateID,
		OwnerID:   d.OwnerID,
		QuizID:    d.QuizID,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.Format(timeLayout),
		UpdatedAt: d.UpdatedAt.Format(timeLayout),
	}
}

// ToListDebatesResponse converts a slice of domain.Debate to the list DTO.
func ToListDebatesResponse(debates []domain.Debate) ListDebatesResponse {
	out := make([]DebateResponse, len(debates))
	for i := range debates {
		out[i] = ToDebateResponse(&debates[i])
	}
	return ListDebatesResponse{Debates: out}
}
