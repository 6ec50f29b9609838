package handlers_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
	"github.com/quizforum/quizforum-backend/internal/handlers"
	"github.com/quizforum/quizforum-backend/internal/middleware"
	"github.com/quizforum/quizforum-backend/internal/platform/config"
)

// --- Mock MemberSvcFacade ---
type MockMemberService struct {
	mock.Mock
}

var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

func (m *MockMemberService) Register(ctx context.Context, req dto.SignUpRequest) (*domain.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) Authenticate(ctx context.Context, username, password string) (*domain.Member, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) ChangePassword(ctx context.Context, memberID, currentPassword, newPassword string) error {
	args := m.Called(ctx, memberID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockMemberService) StoreRefreshToken(ctx context.Context, memberID, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, memberID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockMemberService) SignOut(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// --- Mock TokenSvcFacade ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, member *domain.Member) (string, time.Time, error) {
	args := m.Called(ctx, member)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, member *domain.Member) (string, time.Time, error) {
	args := m.Called(ctx, member)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) VerifyAccessToken(ctx context.Context, tokenString string) (string, error) {
	args := m.Called(ctx, tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) DecodeAccessTokenUnverified(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) RefreshSession(ctx context.Context, accessToken, refreshToken string) (*domain.Member, string, string, error) {
	args := m.Called(ctx, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.Member), args.String(1), args.String(2), args.Error(3)
}

// --- Mock QuizSvcFacade ---
type MockQuizService struct {
	mock.Mock
}

var _ portssvc.QuizSvcFacade = (*MockQuizService)(nil)

func (m *MockQuizService) CreateQuiz(ctx context.Context, ownerID string, req dto.CreateQuizRequest, imageName, imageContentType string, image []byte) (*domain.Quiz, error) {
	args := m.Called(ctx, ownerID, req, imageName, imageContentType, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizService) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizService) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizService) UpdateQuiz(ctx context.Context, quizID string, req dto.UpdateQuizRequest, requesterID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, quizID string, requesterID string) error {
	args := m.Called(ctx, quizID, requesterID)
	return args.Error(0)
}

// --- Mock QuizCommentSvcFacade ---
type MockQuizCommentService struct {
	mock.Mock
}

var _ portssvc.QuizCommentSvcFacade = (*MockQuizCommentService)(nil)

func (m *MockQuizCommentService) CreateQuizComment(ctx context.Context, quizID, authorID string, req dto.CreateQuizCommentRequest) (*domain.QuizComment, error) {
	args := m.Called(ctx, quizID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizComment), args.Error(1)
}

func (m *MockQuizCommentService) ListQuizComments(ctx context.Context, quizID string) ([]domain.QuizComment, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizComment), args.Error(1)
}

func (m *MockQuizCommentService) UpdateQuizComment(ctx context.Context, quizID, commentID string, req dto.UpdateCommentRequest, requesterID string) (*domain.QuizComment, error) {
	args := m.Called(ctx, quizID, commentID, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizComment), args.Error(1)
}

func (m *MockQuizCommentService) DeleteQuizComment(ctx context.Context, quizID, commentID string, requesterID string) error {
	args := m.Called(ctx, quizID, commentID, requesterID)
	return args.Error(0)
}

// --- Mock DebateSvcFacade ---
type MockDebateService struct {
	mock.Mock
}

var _ portssvc.DebateSvcFacade = (*MockDebateService)(nil)

func (m *MockDebateService) CreateDebate(ctx context.Context, ownerID string, req dto.CreateDebateRequest) (*domain.Debate, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debate), args.Error(1)
}

func (m *MockDebateService) ListDebates(ctx context.Context) ([]domain.Debate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debate), args.Error(1)
}

func (m *MockDebateService) GetDebateByID(ctx context.Context, debateID string) (*domain.Debate, error) {
	args := m.Called(ctx, debateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debate), args.Error(1)
}

func (m *MockDebateService) UpdateDebate(ctx context.Context, debateID string, req dto.UpdateDebateRequest, requesterID string) (*domain.Debate, error) {
	args := m.Called(ctx, debateID, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debate), args.Error(1)
}

func (m *MockDebateService) DeleteDebate(ctx context.Context, debateID string, requesterID string) error {
	args := m.Called(ctx, debateID, requesterID)
	return args.Error(0)
}

// --- Mock DebateCommentSvcFacade ---
type MockDebateCommentService struct {
	mock.Mock
}

var _ portssvc.DebateCommentSvcFacade = (*MockDebateCommentService)(nil)

func (m *MockDebateCommentService) CreateDebateComment(ctx context.Context, debateID, authorID string, req dto.CreateDebateCommentRequest) (*domain.DebateComment, error) {
	args := m.Called(ctx, debateID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebateComment), args.Error(1)
}

func (m *MockDebateCommentService) ListDebateComments(ctx context.Context, debateID string) ([]domain.DebateComment, error) {
	args := m.Called(ctx, debateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebateComment), args.Error(1)
}

func (m *MockDebateCommentService) UpdateDebateComment(ctx context.Context, debateID, commentID string, req dto.UpdateCommentRequest, requesterID string) (*domain.DebateComment, error) {
	args := m.Called(ctx, debateID, commentID, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebateComment), args.Error(1)
}

func (m *MockDebateCommentService) DeleteDebateComment(ctx context.Context, debateID, commentID string, requesterID string) error {
	args := m.Called(ctx, debateID, commentID, requesterID)
	return args.Error(0)
}

// --- Shared test fixture ---

// testEnv wires a full router over mock services, the way main does over real
// ones.
type testEnv struct {
	cfg           *config.Config
	memberService *MockMemberService
	tokenService  *MockTokenService
	quizService   *MockQuizService
	quizComments  *MockQuizCommentService
	debateService *MockDebateService
	debateComment *MockDebateCommentService
	router        *gin.Engine
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		cfg: &config.Config{
			AccessTokenSecret:      "access-secret-for-tests",
			AccessTokenExpiry:      time.Hour,
			JWTIssuer:              "quizforum-test",
			RefreshTokenSecret:     "refresh-secret-for-tests",
			RefreshTokenExpiry:     7 * 24 * time.Hour,
			AccessTokenCookieName:  "accessToken",
			RefreshTokenCookieName: "refreshToken",
			IsProduction:           true, // skip swagger routes in tests
		},
		memberService: new(MockMemberService),
		tokenService:  new(MockTokenService),
		quizService:   new(MockQuizService),
		quizComments:  new(MockQuizCommentService),
		debateService: new(MockDebateService),
		debateComment: new(MockDebateCommentService),
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	env.router = gin.New()
	env.router.Use(middleware.StructuredLoggingMiddleware(logger))

	handlers.RegisterRoutes(env.router, env.cfg, &portssvc.ServiceContainer{
		Member:        env.memberService,
		Token:         env.tokenService,
		Quiz:          env.quizService,
		QuizComment:   env.quizComments,
		Debate:        env.debateService,
		DebateComment: env.debateComment,
	})
	return env
}

// authenticate primes the token and member mocks so requests carrying
// "Bearer valid-token" resolve to the given member.
func (env *testEnv) authenticate(member *domain.Member) {
	env.tokenService.On("VerifyAccessToken", mock.Anything, "valid-token").Return(member.Username, nil)
	env.memberService.On("GetMemberByUsername", mock.Anything, member.Username).Return(member, nil)
}

func (env *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
