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

type PgxDebateCommentRepository struct {
	db *pgxpool.Pool
}

func newPgxDebateCommentRepository(db *pgxpool.Pool) portsrepo.DebateCommentRepository {
	return &PgxDebateCommentRepository{db: db}
}

var _ portsrepo.DebateCommentRepository = (*PgxDebateCommentRepository)(nil)

const debateCommentColumns = `comment_id, debate_id, author_id, content, created_at, updated_at, deleted_at`

func scanDebateComment(row pgx.Row) (*domain.DebateComment, error) {
	var c domain.DebateComment
	err := row.Scan(
		&c.CommentID,
		&c.DebateID,
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

func (r *PgxDebateCommentRepository) SaveDebateComment(ctx context.Context, comment domain.DebateComment) error {
	query := `
        INSERT INTO debate_comments (comment_id, debate_id, author_id, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		comment.CommentID,
		comment.DebateID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save debate comment: %w", err)
	}
	return nil
}

func (r *PgxDebateCommentRepository) FindDebateCommentByID(ctx context.Context, commentID string) (*domain.DebateComment, error) {
	query := `SELECT ` + debateCommentColumns + ` FROM debate_comments WHERE comment_id = $1 AND deleted_at IS NULL;`
	comment, err := scanDebateComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debate comment by ID %s: %w", commentID, err)
	}
	return comment, nil
}

func (r *PgxDebateCommentRepository) FindDebateCommentByIDAny(ctx context.Context, commentID string) (*domain.DebateComment, error) {
	query := `SELECT ` + debateCommentColumns + ` FROM debate_comments WHERE comment_id = $1;`
	comment, err := scanDebateComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debate comment by ID %s: %w", commentID, err)
	}
	return comment, nil
}

func (r *PgxDebateCommentRepository) FindDebateCommentsByDebateID(ctx context.Context, debateID string) ([]domain.DebateComment, error) {
	query := `
        SELECT ` + debateCommentColumns + `
        FROM debate_comments
        WHERE debate_id = $1 AND deleted_at IS NULL
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, debateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debate comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.DebateComment{}
	for rows.Next() {
		comment, err := scanDebateComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debate comment row: %w", err)
		}
		comments = append(comments, *comment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating debate comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *PgxDebateCommentRepository) UpdateDebateComment(ctx context.Context, comment domain.DebateComment) error {
	query := `
        UPDATE debate_comments
        SET content = $1, updated_at = $2
        WHERE comment_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, comment.Content, comment.UpdatedAt, comment.CommentID)
	if err != nil {
		return fmt.Errorf("failed to execute update debate comment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDebateCommentRepository) MarkDebateCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error {
	query := `
        UPDATE debate_comments
        SET deleted_at = $1, updated_at = $1
        WHERE comment_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, commentID)
	if err != nil {
		return fmt.Errorf("failed to mark debate comment as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
