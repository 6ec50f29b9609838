package services

import (
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/platform/config"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, imageStore portsrepo.ImageStore) *portssvc.ServiceContainer {
	memberService := NewMemberService(repos.MemberRepo)

	return &portssvc.ServiceContainer{
		Member:        memberService,
		Token:         NewTokenService(cfg, memberService),
		Quiz:          NewQuizService(repos.QuizRepo, imageStore),
		QuizComment:   NewQuizCommentService(repos.QuizCommentRepo, repos.QuizRepo),
		Debate:        NewDebateService(repos.DebateRepo, repos.QuizRepo),
		DebateComment: NewDebateCommentService(repos.DebateCommentRepo, repos.DebateRepo),
	}
}
