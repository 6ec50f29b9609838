package repositories

import (
	"context"
	"time"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// QuizRepository defines persistence operations for quizzes. Find/List exclude
// tombstoned rows; FindQuizByIDAny is the administrative bypass that includes
// them (used for idempotent re-delete detection).
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz domain.Quiz) error
	FindQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error)
	FindQuizByIDAny(ctx context.Context, quizID string) (*domain.Quiz, error)
	FindQuizzes(ctx context.Context) ([]domain.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz domain.Quiz) error
	MarkQuizDeleted(ctx context.Context, quizID string, deletedAt time.Time) error
}

// QuizCommentRepository defines persistence operations for quiz comments.
type QuizCommentRepository interface {
	SaveQuizComment(ctx context.Context, comment domain.QuizComment) error
	FindQuizCommentByID(ctx context.Context, commentID string) (*domain.QuizComment, error)
	FindQuizCommentByIDAny(ctx context.Context, commentID string) (*domain.QuizComment, error)
	FindQuizCommentsByQuizID(ctx context.Context, quizID string) ([]domain.QuizComment, error)
	UpdateQuizComment(ctx context.Context, comment domain.QuizComment) error
	MarkQuizCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error
}
