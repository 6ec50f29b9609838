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

// debateCommentService implements DebateCommentSvcFacade.
type debateCommentService struct {
	commentRepo portsrepo.DebateCommentRepository
	debateRepo  portsrepo.DebateRepository
}

// NewDebateCommentService creates a new debate comment service.
func NewDebateCommentService(commentRepo portsrepo.DebateCommentRepository, debateRepo portsrepo.DebateRepository) portssvc.DebateCommentSvcFacade {
	return &debateCommentService{commentRepo: commentRepo, debateRepo: debateRepo}
}

func (s *debateCommentService) CreateDebateComment(ctx context.Context, debateID, authorID string, req dto.CreateDebateCommentRequest) (*domain.DebateComment, error) {
	if _, err := s.debateRepo.FindDebateByID(ctx, debateID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.DebateComment{
		CommentID: uuid.NewString(),
		DebateID:  debateID,
		AuthorID:  authorID,
		Content:   req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.commentRepo.SaveDebateComment(ctx, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *debateCommentService) ListDebateComments(ctx context.Context, debateID string) ([]domain.DebateComment, error) {
	if _, err := s.debateRepo.FindDebateByID(ctx, debateID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindDebateCommentsByDebateID(ctx, debateID)
}

func (s *debateCommentService) UpdateDebateComment(ctx context.Context, debateID, commentID string, req dto.UpdateCommentRequest, requesterID string) (*domain.DebateComment, error) {
	comment, err := s.commentRepo.FindDebateCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	// The comment only exists under its own debate; any other path is a miss.
	if comment.DebateID != debateID {
		return nil, apperrors.ErrNotFound
	}
	if err := assertOwner(comment.AuthorID, requesterID); err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateDebateComment(ctx, *comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *debateCommentService) DeleteDebateComment(ctx context.Context, debateID, commentID string, requesterID string) error {
	comment, err := s.commentRepo.FindDebateCommentByIDAny(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.DebateID != debateID {
		return apperrors.ErrNotFound
	}
	if err := assertOwner(comment.AuthorID, requesterID); err != nil {
		return err
	}
	if comment.DeletedAt != nil {
		return nil
	}

	err = s.commentRepo.MarkDebateCommentDeleted(ctx, commentID, time.Now())
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}
