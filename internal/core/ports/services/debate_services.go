package services

import (
	"context"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// DebateSvcFacade defines debate thread operations. Same ownership and
// soft-delete rules as quizzes; a debate may optionally reference a live quiz.
type DebateSvcFacade interface {
	CreateDebate(ctx context.Context, ownerID string, req dto.CreateDebateRequest) (*domain.Debate, error)
	ListDebates(ctx context.Context) ([]domain.Debate, error)
	GetDebateByID(ctx context.Context, debateID string) (*domain.Debate, error)
	UpdateDebate(ctx context.Context, debateID string, req dto.UpdateDebateRequest, requesterID string) (*domain.Debate, error)
	DeleteDebate(ctx context.Context, debateID string, requesterID string) error
}

// DebateCommentSvcFacade defines debate comment operations. Creation requires
// a live parent debate.
type DebateCommentSvcFacade interface {
	CreateDebateComment(ctx context.Context, debateID, authorID string, req dto.CreateDebateCommentRequest) (*domain.DebateComment, error)
	ListDebateComments(ctx context.Context, debateID string) ([]domain.DebateComment, error)
	// UpdateDebateComment and DeleteDebateComment address the comment through
	// its parent; a comment under a different debate reads as not found.
	UpdateDebateComment(ctx context.Context, debateID, commentID string, req dto.UpdateCommentRequest, requesterID string) (*domain.DebateComment, error)
	DeleteDebateComment(ctx context.Context, debateID, commentID string, requesterID string) error
}
