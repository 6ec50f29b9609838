package services

import (
	"context"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// QuizSvcFacade defines quiz post operations. Mutations enforce the ownership
// policy against the live row; deletes are tombstone writes.
type QuizSvcFacade interface {
	// CreateQuiz persists a quiz owned by ownerID. The image bytes are
	// uploaded to object storage first; the resulting public URL is stored on
	// the quiz.
	CreateQuiz(ctx context.Context, ownerID string, req dto.CreateQuizRequest, imageName, imageContentType string, image []byte) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error)
	// UpdateQuiz applies a partial update. Fails with apperrors.ErrForbidden
	// when requesterID is not the owner.
	UpdateQuiz(ctx context.Context, quizID string, req dto.UpdateQuizRequest, requesterID string) (*domain.Quiz, error)
	// DeleteQuiz soft-deletes. Re-deleting an already tombstoned quiz is an
	// idempotent success that keeps the original tombstone timestamp.
	DeleteQuiz(ctx context.Context, quizID string, requesterID string) error
}

// QuizCommentSvcFacade defines quiz comment operations. Creation requires the
// parent quiz to exist and not be tombstoned.
type QuizCommentSvcFacade interface {
	CreateQuizComment(ctx context.Context, quizID, authorID string, req dto.CreateQuizCommentRequest) (*domain.QuizComment, error)
	ListQuizComments(ctx context.Context, quizID string) ([]domain.QuizComment, error)
	// UpdateQuizComment and DeleteQuizComment address the comment through its
	// parent; a comment that exists under a different quiz reads as not found.
	UpdateQuizComment(ctx context.Context, quizID, commentID string, req dto.UpdateCommentRequest, requesterID string) (*domain.QuizComment, error)
	DeleteQuizComment(ctx context.Context, quizID, commentID string, requesterID string) error
}
