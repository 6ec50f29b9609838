package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
	portssvc "github.com/quizforum/quizforum-backend/internal/core/ports/services"
	"github.com/quizforum/quizforum-backend/internal/core/services"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

// --- Mock QuizCommentRepository ---
type MockQuizCommentRepository struct {
	mock.Mock
}

var _ portsrepo.QuizCommentRepository = (*MockQuizCommentRepository)(nil)

func (m *MockQuizCommentRepository) SaveQuizComment(ctx context.Context, comment domain.QuizComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockQuizCommentRepository) FindQuizCommentByID(ctx context.Context, commentID string) (*domain.QuizComment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizComment), args.Error(1)
}

func (m *MockQuizCommentRepository) FindQuizCommentByIDAny(ctx context.Context, commentID string) (*domain.QuizComment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizComment), args.Error(1)
}

func (m *MockQuizCommentRepository) FindQuizCommentsByQuizID(ctx context.Context, quizID string) ([]domain.QuizComment, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizComment), args.Error(1)
}

func (m *MockQuizCommentRepository) UpdateQuizComment(ctx context.Context, comment domain.QuizComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockQuizCommentRepository) MarkQuizCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error {
	args := m.Called(ctx, commentID, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type QuizCommentServiceTestSuite struct {
	suite.Suite
	mockCommentRepo *MockQuizCommentRepository
	mockQuizRepo    *MockQuizRepository
	service         portssvc.QuizCommentSvcFacade
}

func (suite *QuizCommentServiceTestSuite) SetupTest() {
	suite.mockCommentRepo = new(MockQuizCommentRepository)
	suite.mockQuizRepo = new(MockQuizRepository)
	suite.service = services.NewQuizCommentService(suite.mockCommentRepo, suite.mockQuizRepo)
}

func (suite *QuizCommentServiceTestSuite) TestCreateQuizComment_Success() {
	ctx := context.Background()
	quizID := uuid.NewString()
	authorID := uuid.NewString()
	parent := &domain.Quiz{QuizID: quizID, OwnerID: uuid.NewString()}

	suite.mockQuizRepo.On("FindQuizByID", ctx, quizID).Return(parent, nil).Once()
	suite.mockCommentRepo.On("SaveQuizComment", ctx, mock.MatchedBy(func(c domain.QuizComment) bool {
		return c.QuizID == quizID && c.AuthorID == authorID && c.Content == "nice one"
	})).Return(nil).Once()

	comment, err := suite.service.CreateQuizComment(ctx, quizID, authorID, dto.CreateQuizCommentRequest{Content: "nice one"})

	suite.Require().NoError(err)
	suite.NotEmpty(comment.CommentID)
	suite.mockCommentRepo.AssertExpectations(suite.T())
	suite.mockQuizRepo.AssertExpectations(suite.T())
}

func (suite *QuizCommentServiceTestSuite) TestCreateQuizComment_ParentDeleted() {
	ctx := context.Background()
	quizID := uuid.NewString()

	// Tombstoned parents are invisible to the live lookup
	suite.mockQuizRepo.On("FindQuizByID", ctx, quizID).Return(nil, apperrors.ErrNotFound).Once()

	comment, err := suite.service.CreateQuizComment(ctx, quizID, uuid.NewString(), dto.CreateQuizCommentRequest{Content: "too late"})

	suite.Require().Error(err)
	suite.Nil(comment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "SaveQuizComment", mock.Anything, mock.Anything)
}

func (suite *QuizCommentServiceTestSuite) TestUpdateQuizComment_NotAuthor() {
	ctx := context.Background()
	commentID := uuid.NewString()
	existing := &domain.QuizComment{CommentID: commentID, QuizID: uuid.NewString(), AuthorID: uuid.NewString(), Content: "original"}
	newContent := "edited"

	suite.mockCommentRepo.On("FindQuizCommentByID", ctx, commentID).Return(existing, nil).Once()

	comment, err := suite.service.UpdateQuizComment(ctx, existing.QuizID, commentID, dto.UpdateCommentRequest{Content: &newContent}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(comment)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "UpdateQuizComment", mock.Anything, mock.Anything)
}

func (suite *QuizCommentServiceTestSuite) TestUpdateQuizComment_WrongParentQuiz() {
	ctx := context.Background()
	commentID := uuid.NewString()
	authorID := uuid.NewString()
	existing := &domain.QuizComment{CommentID: commentID, QuizID: uuid.NewString(), AuthorID: authorID, Content: "original"}
	newContent := "edited"

	suite.mockCommentRepo.On("FindQuizCommentByID", ctx, commentID).Return(existing, nil).Once()

	// Addressing the comment through another quiz's path must miss, even for
	// the author
	comment, err := suite.service.UpdateQuizComment(ctx, uuid.NewString(), commentID, dto.UpdateCommentRequest{Content: &newContent}, authorID)

	suite.Require().Error(err)
	suite.Nil(comment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "UpdateQuizComment", mock.Anything, mock.Anything)
}

func (suite *QuizCommentServiceTestSuite) TestDeleteQuizComment_WrongParentQuiz() {
	ctx := context.Background()
	commentID := uuid.NewString()
	authorID := uuid.NewString()
	existing := &domain.QuizComment{CommentID: commentID, QuizID: uuid.NewString(), AuthorID: authorID}

	suite.mockCommentRepo.On("FindQuizCommentByIDAny", ctx, commentID).Return(existing, nil).Once()

	err := suite.service.DeleteQuizComment(ctx, uuid.NewString(), commentID, authorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "MarkQuizCommentDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuizCommentServiceTestSuite) TestDeleteQuizComment_AlreadyDeletedIsNoOp() {
	ctx := context.Background()
	commentID := uuid.NewString()
	authorID := uuid.NewString()
	deletedAt := time.Now().Add(-time.Hour)
	existing := &domain.QuizComment{CommentID: commentID, QuizID: uuid.NewString(), AuthorID: authorID, DeletedAt: &deletedAt}

	suite.mockCommentRepo.On("FindQuizCommentByIDAny", ctx, commentID).Return(existing, nil).Once()

	err := suite.service.DeleteQuizComment(ctx, existing.QuizID, commentID, authorID)

	suite.Require().NoError(err)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "MarkQuizCommentDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuizCommentServiceTestSuite) TestListQuizComments_ParentMustBeLive() {
	ctx := context.Background()
	quizID := uuid.NewString()

	suite.mockQuizRepo.On("FindQuizByID", ctx, quizID).Return(nil, apperrors.ErrNotFound).Once()

	comments, err := suite.service.ListQuizComments(ctx, quizID)

	suite.Require().Error(err)
	suite.Nil(comments)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "FindQuizCommentsByQuizID", mock.Anything, mock.Anything)
}

func TestQuizCommentService(t *testing.T) {
	suite.Run(t, new(QuizCommentServiceTestSuite))
}
