package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
)

type PgxDebateRepository struct {
	db *pgxpool.Pool
}

func newPgxDebateRepository(db *pgxpool.Pool) portsrepo.DebateRepository {
	return &PgxDebateRepository{db: db}
}

var _ portsrepo.DebateRepository = (*PgxDebateRepository)(nil)

const debateColumns = `debate_id, owner_id, quiz_id, title, content, created_at, updated_at, deleted_at`

func scanDebate(row pgx.Row) (*domain.Debate, error) {
	var d domain.Debate
	err := row.Scan(
		&d.DebateID,
		&d.OwnerID,
		&d.QuizID,
		&d.Title,
		&d.Content,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDebateRepository) SaveDebate(ctx context.Context, debate domain.Debate) error {
	query := `
        INSERT INTO debates (debate_id, owner_id, quiz_id, title, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		debate.DebateID,
		debate.OwnerID,
		debate.QuizID,
		debate.Title,
		debate.Content,
		debate.CreatedAt,
		debate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save debate: %w", err)
	}
	return nil
}

func (r *PgxDebateRepository) FindDebateByID(ctx context.Context, debateID string) (*domain.Debate, error) {
	query := `SELECT ` + debateColumns + ` FROM debates WHERE debate_id = $1 AND deleted_at IS NULL;`
	debate, err := scanDebate(r.db.QueryRow(ctx, query, debateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debate by ID %s: %w", debateID, err)
	}
	return debate, nil
}

func (r *PgxDebateRepository) FindDebateByIDAny(ctx context.Context, debateID string) (*domain.Debate, error) {
	query := `SELECT ` + debateColumns + ` FROM debates WHERE debate_id = $1;`
	debate, err := scanDebate(r.db.QueryRow(ctx, query, debateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debate by ID %s: %w", debateID, err)
	}
	return debate, nil
}

func (r *PgxDebateRepository) FindDebates(ctx context.Context) ([]domain.Debate, error) {
	query := `
        SELECT ` + debateColumns + `
        FROM debates
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query debates: %w", err)
	}
	defer rows.Close()

	debates := []domain.Debate{}
	for rows.Next() {
		debate, err := scanDebate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debate row: %w", err)
		}
		debates = append(debates, *debate)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating debate rows: %w", rows.Err())
	}
	return debates, nil
}

func (r *PgxDebateRepository) UpdateDebate(ctx context.Context, debate domain.Debate) error {
	query := `
        UPDATE debates
        SET title = $1, content = $2, updated_at = $3
        WHERE debate_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		debate.Title,
		debate.Content,
		debate.UpdatedAt,
		debate.DebateID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update debate query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDebateRepository) MarkDebateDeleted(ctx context.Context, debateID string, deletedAt time.Time) error {
	query := `
        UPDATE debates
        SET deleted_at = $1, updated_at = $1
        WHERE debate_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, debateID)
	if err != nil {
		return fmt.Errorf("failed to mark debate as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
