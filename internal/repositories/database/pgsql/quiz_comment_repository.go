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

type PgxQuizCommentRepository struct {
	db *pgxpool.Pool
}

func newPgxQuizCommentRepository(db *pgxpool.Pool) portsrepo.QuizCommentRepository {
	return &PgxQuizCommentRepository{db: db}
}

var _ portsrepo.QuizCommentRepository = (*PgxQuizCommentRepository)(nil)

const quizCommentColumns = `comment_id, quiz_id, author_id, content, created_at, updated_at, deleted_at`

func scanQuizComment(row pgx.Row) (*domain.QuizComment, error) {
	var c domain.QuizComment
	err := row.Scan(
		&c.CommentID,
		&c.QuizID,
		&c.AuthorID,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxQuizCommentRepository) SaveQuizComment(ctx context.Context, comment domain.QuizComment) error {
	query := `
        INSERT INTO quiz_comments (comment_id, quiz_id, author_id, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		comment.CommentID,
		comment.QuizID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz comment: %w", err)
	}
	return nil
}

func (r *PgxQuizCommentRepository) FindQuizCommentByID(ctx context.Context, commentID string) (*domain.QuizComment, error) {
	query := `SELECT ` + quizCommentColumns + ` FROM quiz_comments WHERE comment_id = $1 AND deleted_at IS NULL;`
	comment, err := scanQuizComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quiz comment by ID %s: %w", commentID, err)
	}
	return comment, nil
}

func (r *PgxQuizCommentRepository) FindQuizCommentByIDAny(ctx context.Context, commentID string) (*domain.QuizComment, error) {
	query := `SELECT ` + quizCommentColumns + ` FROM quiz_comments WHERE comment_id = $1;`
	comment, err := scanQuizComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quiz comment by ID %s: %w", commentID, err)
	}
	return comment, nil
}

func (r *PgxQuizCommentRepository) FindQuizCommentsByQuizID(ctx context.Context, quizID string) ([]domain.QuizComment, error) {
	query := `
        SELECT ` + quizCommentColumns + `
        FROM quiz_comments
        WHERE quiz_id = $1 AND deleted_at IS NULL
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.QuizComment{}
	for rows.Next() {
		comment, err := scanQuizComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz comment row: %w", err)
		}
		comments = append(comments, *comment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating quiz comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *PgxQuizCommentRepository) UpdateQuizComment(ctx context.Context, comment domain.QuizComment) error {
	query := `
        UPDATE quiz_comments
        SET content = $1, updated_at = $2
        WHERE comment_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, comment.Content, comment.UpdatedAt, comment.CommentID)
	if err != nil {
		return fmt.Errorf("failed to execute update quiz comment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuizCommentRepository) MarkQuizCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error {
	query := `
        UPDATE quiz_comments
        SET deleted_at = $1, updated_at = $1
        WHERE comment_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, commentID)
	if err != nil {
		return fmt.Errorf("failed to mark quiz comment as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
