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

// debateService implements DebateSvcFacade.
type debateService struct {
	debateRepo portsrepo.DebateRepository
	quizRepo   portsrepo.QuizRepository
}

// NewDebateService creates a new debate service.
func NewDebateService(debateRepo portsrepo.DebateRepository, quizRepo portsrepo.QuizRepository) portssvc.DebateSvcFacade {
	return &debateService{debateRepo: debateRepo, quizRepo: quizRepo}
}

func (s *debateService) CreateDebate(ctx context.Context, ownerID string, req dto.CreateDebateRequest) (*domain.Debate, error) {
	// A linked quiz must exist and be live.
	if req.QuizID != nil {
		if _, err := s.quizRepo.FindQuizByID(ctx, *req.QuizID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("linked quiz not found: %w", apperrors.ErrNotFound)
			}
			return nil, err
		}
	}

	now := time.Now()
	debate := domain.Debate{
		DebateID: uuid.NewString(),
		OwnerID:  ownerID,
		QuizID:   req.QuizID,
		Title:    req.Title,
		Content:  req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.debateRepo.SaveDebate(ctx, debate); err != nil {
		return nil, err
	}
	return &debate, nil
}

func (s *debateService) ListDebates(ctx context.Context) ([]domain.Debate, error) {
	return s.debateRepo.FindDebates(ctx)
}

func (s *debateService) GetDebateByID(ctx context.Context, debateID string) (*domain.Debate, error) {
	return s.debateRepo.FindDebateByID(ctx, debateID)
}

func (s *debateService) UpdateDebate(ctx context.Context, debateID string, req dto.UpdateDebateRequest, requesterID string) (*domain.Debate, error) {
	debate, err := s.debateRepo.FindDebateByID(ctx, debateID)
	if err != nil {
		return nil, err
	}
	if err := assertOwner(debate.OwnerID, requesterID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		debate.Title = *req.Title
	}
	if req.Content != nil {
		debate.Content = *req.Content
	}
	debate.UpdatedAt = time.Now()

	if err := s.debateRepo.UpdateDebate(ctx, *debate); err != nil {
		return nil, err
	}
	return debate, nil
}

func (s *debateService) DeleteDebate(ctx context.Context, debateID string, requesterID string) error {
	debate, err := s.debateRepo.FindDebateByIDAny(ctx, debateID)
	if err != nil {
		return err
	}
	if err := assertOwner(debate.OwnerID, requesterID); err != nil {
		return err
	}
	if debate.DeletedAt != nil {
		return nil
	}

	err = s.debateRepo.MarkDebateDeleted(ctx, debateID, time.Now())
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}
