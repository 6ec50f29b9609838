package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// quizCommentService implements QuizCommentSvcFacade.
type quizCommentService struct {
	commentRepo portsrepo.QuizCommentRepository
	quizRepo    portsrepo.QuizRepository
}

// NewQuizCommentService creates a new quiz comment service.
func NewQuizCommentService(commentRepo portsrepo.QuizCommentRepository, quizRepo portsrepo.QuizRepository) portssvc.QuizCommentSvcFacade {
	return &quizCommentService{commentRepo: commentRepo, quizRepo: quizRepo}
}

func (s *quizCommentService) CreateQuizComment(ctx context.Context, quizID, authorID string, req dto.CreateQuizCommentRequest) (*domain.QuizComment, error) {
	// The parent must be live; FindQuizByID filters tombstoned rows, so a
	// deleted quiz reads as not found here.
	if _, err := s.quizRepo.FindQuizByID(ctx, quizID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.QuizComment{
		CommentID: uuid.NewString(),
		QuizID:    quizID,
		AuthorID:  authorID,
		Content:   req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.commentRepo.SaveQuizComment(ctx, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *quizCommentService) ListQuizComments(ctx context.Context, quizID string) ([]domain.QuizComment, error) {
	if _, err := s.quizRepo.FindQuizByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindQuizCommentsByQuizID(ctx, quizID)
}

func (s *quizCommentService) UpdateQuizComment(ctx context.Context, quizID, commentID string, req dto.UpdateCommentRequest, requesterID string) (*domain.QuizComment, error) {
	comment, err := s.commentRepo.FindQuizCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	// The comment only exists under its own quiz; any other path is a miss.
	if comment.QuizID != quizID {
		return nil, apperrors.ErrNotFound
	}
	if err := assertOwner(comment.AuthorID, requesterID); err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateQuizComment(ctx, *comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *quizCommentService) DeleteQuizComment(ctx context.Context, quizID, commentID string, requesterID string) error {
	comment, err := s.commentRepo.FindQuizCommentByIDAny(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.QuizID != quizID {
		return apperrors.ErrNotFound
	}
	if err := assertOwner(comment.AuthorID, requesterID); err != nil {
		return err
	}
	if comment.DeletedAt != nil {
		return nil
	}

	err = s.commentRepo.MarkQuizCommentDeleted(ctx, commentID, time.Now())
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}
