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

type PgxQuizRepository struct {
	db *pgxpool.Pool
}

func newPgxQuizRepository(db *pgxpool.Pool) portsrepo.QuizRepository {
	return &PgxQuizRepository{db: db}
}

var _ portsrepo.QuizRepository = (*PgxQuizRepository)(nil)

const quizColumns = `quiz_id, owner_id, title, content, image_url, created_at, updated_at, deleted_at`

func scanQuiz(row pgx.Row) (*domain.Quiz, error) {
	var q domain.Quiz
	err := row.Scan(
		&q.QuizID,
		&q.OwnerID,
		&q.Title,
		&q.Content,
		&q.ImageURL,
		&q.CreatedAt,
		&q.UpdatedAt,
		&q.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PgxQuizRepository) SaveQuiz(ctx context.Context, quiz domain.Quiz) error {
	query := `
        INSERT INTO quizzes (quiz_id, owner_id, title, content, image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		quiz.QuizID,
		quiz.OwnerID,
		quiz.Title,
		quiz.Content,
		quiz.ImageURL,
		quiz.CreatedAt,
		quiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}

func (r *PgxQuizRepository) FindQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE quiz_id = $1 AND deleted_at IS NULL;`
	quiz, err := scanQuiz(r.db.QueryRow(ctx, query, quizID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quiz by ID %s: %w", quizID, err)
	}
	return quiz, nil
}

// FindQuizByIDAny includes tombstoned rows. Administrative bypass, used to
// tell "already deleted" apart from "never existed".
func (r *PgxQuizRepository) FindQuizByIDAny(ctx context.Context, quizID string) (*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE quiz_id = $1;`
	quiz, err := scanQuiz(r.db.QueryRow(ctx, query, quizID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quiz by ID %s: %w", quizID, err)
	}
	return quiz, nil
}

func (r *PgxQuizRepository) FindQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	query := `
        SELECT ` + quizColumns + `
        FROM quizzes
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz row: %w", err)
		}
		quizzes = append(quizzes, *quiz)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating quiz rows: %w", rows.Err())
	}
	return quizzes, nil
}

func (r *PgxQuizRepository) UpdateQuiz(ctx context.Context, quiz domain.Quiz) error {
	query := `
        UPDATE quizzes
        SET title = $1, content = $2, image_url = $3, updated_at = $4
        WHERE quiz_id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		quiz.Title,
		quiz.Content,
		quiz.ImageURL,
		quiz.UpdatedAt,
		quiz.QuizID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update quiz query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuizRepository) MarkQuizDeleted(ctx context.Context, quizID string, deletedAt time.Time) error {
	// The deleted_at guard keeps the original tombstone timestamp on repeat
	// deletes; callers treat zero rows affected as "not live".
	query := `
        UPDATE quizzes
        SET deleted_at = $1, updated_at = $1
        WHERE quiz_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, quizID)
	if err != nil {
		return fmt.Errorf("failed to mark quiz as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
