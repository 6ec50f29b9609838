package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
	"github.com/quizforum/quizforum-backend/internal/core/domain"
	"github.com/quizforum/quizforum-backend/internal/dto"
)

type QuizHandlerTestSuite struct {
	suite.Suite
	env    *testEnv
	member *domain.Member
}

func (suite *QuizHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv()
	suite.member = &domain.Member{MemberID: uuid.NewString(), Username: "alice", Nickname: "wonder"}
	suite.env.authenticate(suite.member)
}

func (suite *QuizHandlerTestSuite) authedRequest(method, path string, body *bytes.Reader, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer valid-token")
	return suite.env.serve(req)
}

func (suite *QuizHandlerTestSuite) multipartQuiz(title, content string, image []byte) (*bytes.Reader, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	suite.Require().NoError(mw.WriteField("title", title))
	suite.Require().NoError(mw.WriteField("content", content))
	part, err := mw.CreateFormFile("imageURL", "question.png")
	suite.Require().NoError(err)
	_, err = part.Write(image)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())
	return bytes.NewReader(buf.Bytes()), mw.FormDataContentType()
}

func (suite *QuizHandlerTestSuite) TestCreateQuiz() {
	image := []byte{0x89, 0x50, 0x4E, 0x47}
	quiz := &domain.Quiz{
		QuizID:   uuid.NewString(),
		OwnerID:  suite.member.MemberID,
		Title:    "capitals",
		Content:  "capital of France?",
		ImageURL: "https://quizzes-assets.s3.ap-northeast-2.amazonaws.com/image/1.png",
	}

	suite.env.quizService.On("CreateQuiz", mock.Anything, suite.member.MemberID,
		dto.CreateQuizRequest{Title: "capitals", Content: "capital of France?"},
		"question.png", mock.AnythingOfType("string"), image).Return(quiz, nil).Once()

	body, contentType := suite.multipartQuiz("capitals", "capital of France?", image)
	w := suite.authedRequest(http.MethodPost, "/api/v1/quizzes", body, contentType)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.QuizResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(quiz.QuizID, resp.QuizID)
	suite.Equal(quiz.ImageURL, resp.ImageURL)
	suite.env.quizService.AssertExpectations(suite.T())
}

func (suite *QuizHandlerTestSuite) TestCreateQuiz_MissingImagePart() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	suite.Require().NoError(mw.WriteField("title", "capitals"))
	suite.Require().NoError(mw.WriteField("content", "capital of France?"))
	suite.Require().NoError(mw.Close())

	w := suite.authedRequest(http.MethodPost, "/api/v1/quizzes", bytes.NewReader(buf.Bytes()), mw.FormDataContentType())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.env.quizService.AssertNotCalled(suite.T(), "CreateQuiz",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuizHandlerTestSuite) TestListQuizzes() {
	quizzes := []domain.Quiz{
		{QuizID: uuid.NewString(), Title: "first"},
		{QuizID: uuid.NewString(), Title: "second"},
	}
	suite.env.quizService.On("ListQuizzes", mock.Anything).Return(quizzes, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/quizzes", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListQuizzesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Quizzes, 2)
}

func (suite *QuizHandlerTestSuite) TestGetQuiz_DeletedAnswersNotFound() {
	quizID := uuid.NewString()
	suite.env.quizService.On("GetQuizByID", mock.Anything, quizID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/quizzes/"+quizID, nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *QuizHandlerTestSuite) TestUpdateQuiz_NotOwner() {
	quizID := uuid.NewString()
	suite.env.quizService.On("UpdateQuiz", mock.Anything, quizID, mock.AnythingOfType("dto.UpdateQuizRequest"), suite.member.MemberID).
		Return(nil, apperrors.ErrForbidden).Once()

	payload, err := json.Marshal(gin.H{"title": "hijacked"})
	suite.Require().NoError(err)
	w := suite.authedRequest(http.MethodPatch, "/api/v1/quizzes/"+quizID, bytes.NewReader(payload), "application/json")

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *QuizHandlerTestSuite) TestDeleteQuiz() {
	quizID := uuid.NewString()
	suite.env.quizService.On("DeleteQuiz", mock.Anything, quizID, suite.member.MemberID).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/quizzes/"+quizID, nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.env.quizService.AssertExpectations(suite.T())
}

func (suite *QuizHandlerTestSuite) TestUnauthenticatedRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quizzes", nil)
	w := suite.env.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.env.quizService.AssertNotCalled(suite.T(), "ListQuizzes", mock.Anything)
}

func TestQuizHandler(t *testing.T) {
	suite.Run(t, new(QuizHandlerTestSuite))
}
