package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
)

const pgUniqueViolation = "23505"

type PgxMemberRepository struct {
	db *pgxpool.Pool
}

func newPgxMemberRepository(db *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{db: db}
}

var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

const memberColumns = `member_id, username, nickname, password_hash, refresh_token_hash, refresh_token_expiry_time, created_at, updated_at, deleted_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	var refreshHash *string
	err := row.Scan(
		&m.MemberID,
		&m.Username,
		&m.Nickname,
		&m.PasswordHash,
		&refreshHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if refreshHash != nil {
		m.RefreshTokenHash = *refreshHash
	}
	return &m, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
        INSERT INTO members (member_id, username, nickname, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		member.MemberID,
		member.Username,
		member.Nickname,
		member.PasswordHash,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1 AND deleted_at IS NULL;`
	member, err := scanMember(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	return member, nil
}

func (r *PgxMemberRepository) FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE username = $1 AND deleted_at IS NULL;`
	member, err := scanMember(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by username: %w", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) FindMemberByNickname(ctx context.Context, nickname string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE nickname = $1 AND deleted_at IS NULL;`
	member, err := scanMember(r.db.QueryRow(ctx, query, nickname))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by nickname: %w", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) UpdatePassword(ctx context.Context, memberID string, passwordHash string, updatedAt time.Time) error {
	query := `
        UPDATE members
        SET password_hash = $1, updated_at = $2
        WHERE member_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, updatedAt, memberID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) UpdateRefreshToken(ctx context.Context, memberID string, refreshTokenHash string, expiryTime time.Time) error {
	query := `
        UPDATE members
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2, updated_at = now()
        WHERE member_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshTokenHash, expiryTime, memberID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) ClearRefreshToken(ctx context.Context, memberID string) error {
	// Clearing an already-clear hash still matches the row, so repeated
	// sign-outs succeed.
	query := `
        UPDATE members
        SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, updated_at = now()
        WHERE member_id = $1 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, memberID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
