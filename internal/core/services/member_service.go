package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
	"github.com/quizforum/quizforum-backend/internal/utils"
)

// memberService implements MemberSvcFacade over the member repository.
type memberService struct {
	memberRepo portsrepo.MemberRepository
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo portsrepo.MemberRepository) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) Register(ctx context.Context, req dto.SignUpRequest) (*domain.Member, error) {
	// App-level policy: the password must not contain the username, so a
	// leaked hash comparison can never be shortcut by the obvious guess.
	if strings.Contains(req.Password, req.Username) {
		return nil, fmt.Errorf("password must not contain the username: %w", apperrors.ErrValidation)
	}

	if _, err := s.memberRepo.FindMemberByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	if _, err := s.memberRepo.FindMemberByNickname(ctx, req.Nickname); err == nil {
		return nil, fmt.Errorf("nickname already taken: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check nickname uniqueness: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	member := domain.Member{
		MemberID:     uuid.NewString(),
		Username:     req.Username,
		Nickname:     req.Nickname,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		// The unique index is the backstop for the race between the
		// existence checks above and the insert.
		return nil, err
	}

	return &member, nil
}

func (s *memberService) Authenticate(ctx context.Context, username, password string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up member for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, member.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

func (s *memberService) GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByUsername(ctx, username)
}

func (s *memberService) ChangePassword(ctx context.Context, memberID, currentPassword, newPassword string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, member.PasswordHash) {
		return fmt.Errorf("current password does not match: %w", apperrors.ErrValidation)
	}
	if strings.Contains(newPassword, member.Username) {
		return fmt.Errorf("password must not contain the username: %w", apperrors.ErrValidation)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.memberRepo.UpdatePassword(ctx, memberID, newHash, time.Now())
}

func (s *memberService) StoreRefreshToken(ctx context.Context, memberID, refreshTokenHash string, expiryTime time.Time) error {
	return s.memberRepo.UpdateRefreshToken(ctx, memberID, refreshTokenHash, expiryTime)
}

func (s *memberService) SignOut(ctx context.Context, memberID string) error {
	// ClearRefreshToken nulls the stored hash even when it is already null,
	// so repeated sign-outs succeed.
	return s.memberRepo.ClearRefreshToken(ctx, memberID)
}
