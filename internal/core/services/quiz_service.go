package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// quizService implements QuizSvcFacade.
type quizService struct {
	quizRepo   portsrepo.QuizRepository
	imageStore portsrepo.ImageStore
}

// NewQuizService creates a new quiz service.
func NewQuizService(quizRepo portsrepo.QuizRepository, imageStore portsrepo.ImageStore) portssvc.QuizSvcFacade {
	return &quizService{quizRepo: quizRepo, imageStore: imageStore}
}

func (s *quizService) CreateQuiz(ctx context.Context, ownerID string, req dto.CreateQuizRequest, imageName, imageContentType string, image []byte) (*domain.Quiz, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("quiz image is required: %w", apperrors.ErrValidation)
	}

	imageURL, err := s.imageStore.UploadImage(ctx, imageName, imageContentType, image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload quiz image: %w", err)
	}

	now := time.Now()
	quiz := domain.Quiz{
		QuizID:   uuid.NewString(),
		OwnerID:  ownerID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: imageURL,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.quizRepo.SaveQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	return s.quizRepo.FindQuizzes(ctx)
}

func (s *quizService) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return s.quizRepo.FindQuizByID(ctx, quizID)
}

func (s *quizService) UpdateQuiz(ctx context.Context, quizID string, req dto.UpdateQuizRequest, requesterID string) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.FindQuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := assertOwner(quiz.OwnerID, requesterID); err != nil {
		return nil, err
	}

	// Partial merge: absent fields keep their previous values.
	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Content != nil {
		quiz.Content = *req.Content
	}
	if req.ImageURL != nil {
		quiz.ImageURL = *req.ImageURL
	}
	quiz.UpdatedAt = time.Now()

	if err := s.quizRepo.UpdateQuiz(ctx, *quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID string, requesterID string) error {
	quiz, err := s.quizRepo.FindQuizByIDAny(ctx, quizID)
	if err != nil {
		return err
	}
	if err := assertOwner(quiz.OwnerID, requesterID); err != nil {
		return err
	}
	if quiz.DeletedAt != nil {
		// Already tombstoned: succeed without touching the original
		// timestamp.
		return nil
	}

	err = s.quizRepo.MarkQuizDeleted(ctx, quizID, time.Now())
	if errors.Is(err, apperrors.ErrNotFound) {
		// A concurrent delete won the tombstone write; still a success.
		return nil
	}
	return err
}
