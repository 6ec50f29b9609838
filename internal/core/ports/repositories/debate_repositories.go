package repositories

import (
	"context"
	"time"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// DebateRepository defines persistence operations for debate threads.
type DebateRepository interface {
	SaveDebate(ctx context.Context, debate domain.Debate) error
	FindDebateByID(ctx context.Context, debateID string) (*domain.Debate, error)
	FindDebateByIDAny(ctx context.Context, debateID string) (*domain.Debate, error)
	FindDebates(ctx context.Context) ([]domain.Debate, error)
	UpdateDebate(ctx context.Context, debate domain.Debate) error
	MarkDebateDeleted(ctx context.Context, debateID string, deletedAt time.Time) error
}

// DebateCommentRepository defines persistence operations for debate comments.
type DebateCommentRepository interface {
	SaveDebateComment(ctx context.Context, comment domain.DebateComment) error
	FindDebateCommentByID(ctx context.Context, commentID string) (*domain.DebateComment, error)
	FindDebateCommentByIDAny(ctx context.Context, commentID string) (*domain.DebateComment, error)
	FindDebateCommentsByDebateID(ctx context.Context, debateID string) ([]domain.DebateComment, error)
	UpdateDebateComment(ctx context.Context, comment domain.DebateComment) error
	MarkDebateCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error
}
