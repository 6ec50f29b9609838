package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemberRepo:        newPgxMemberRepository(dbPool),
		QuizRepo:          newPgxQuizRepository(dbPool),
		QuizCommentRepo:   newPgxQuizCommentRepository(dbPool),
		DebateRepo:        newPgxDebateRepository(dbPool),
		DebateCommentRepo: newPgxDebateCommentRepository(dbPool),
	}
}
