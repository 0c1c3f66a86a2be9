package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LikeRepository ---
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) InsertLike(ctx context.Context, like domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLike(ctx context.Context, contentID, userID string) (bool, error) {
	args := m.Called(ctx, contentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountLikes(ctx context.Context, contentID string) (int64, error) {
	args := m.Called(ctx, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) FindLikedContentIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	var comment *domain.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*domain.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentRepository) FindCommentsByContentID(ctx context.Context, contentID string) ([]domain.Comment, error) {
	args := m.Called(ctx, contentID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) FindCommentedContentIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockCommentRepository) UpdateCommentText(ctx context.Context, commentID, text string) error {
	args := m.Called(ctx, commentID, text)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// --- Test Suite ---
type EngagementServiceTestSuite struct {
	suite.Suite
	mockLikeRepo    *MockLikeRepository
	mockCommentRepo *MockCommentRepository
	mockContentRepo *MockContentRepository
	service         *services.EngagementService
	ctx             context.Context
}

func (suite *EngagementServiceTestSuite) SetupTest() {
	suite.mockLikeRepo = new(MockLikeRepository)
	suite.mockCommentRepo = new(MockCommentRepository)
	suite.mockContentRepo = new(MockContentRepository)
	suite.service = services.NewEngagementService(suite.mockLikeRepo, suite.mockCommentRepo, suite.mockContentRepo)
	suite.ctx = context.Background()
}

func (suite *EngagementServiceTestSuite) TestToggleLike_FirstLike() {
	content := publishedContent("item", false)

	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-1").Return(content, nil).Once()
	suite.mockLikeRepo.On("InsertLike", suite.ctx, mock.MatchedBy(func(l domain.Like) bool {
		return l.ContentID == "content-1" && l.UserID == "user-1" && l.LikeID != ""
	})).Return(nil).Once()
	suite.mockLikeRepo.On("CountLikes", suite.ctx, "content-1").Return(int64(1), nil).Once()

	liked, count, err := suite.service.ToggleLike(suite.ctx, "content-1", "user-1")
	suite.NoError(err)
	suite.True(liked)
	suite.Equal(int64(1), count)
	suite.mockLikeRepo.AssertNotCalled(suite.T(), "DeleteLike")
}

func (suite *EngagementServiceTestSuite) TestToggleLike_DuplicateBecomesUnlike() {
	content := publishedContent("item", false)

	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-1").Return(content, nil).Once()
	suite.mockLikeRepo.On("InsertLike", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockLikeRepo.On("DeleteLike", suite.ctx, "content-1", "user-1").Return(true, nil).Once()
	suite.mockLikeRepo.On("CountLikes", suite.ctx, "content-1").Return(int64(0), nil).Once()

	liked, count, err := suite.service.ToggleLike(suite.ctx, "content-1", "user-1")
	suite.NoError(err)
	suite.False(liked)
	suite.Equal(int64(0), count)
	suite.mockLikeRepo.AssertExpectations(suite.T())
}

func (suite *EngagementServiceTestSuite) TestToggleLike_UnknownContent() {
	suite.mockContentRepo.On("FindContentByID", suite.ctx, "missing").Return(nil, nil).Once()

	_, _, err := suite.service.ToggleLike(suite.ctx, "missing", "user-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLikeRepo.AssertNotCalled(suite.T(), "InsertLike")
}

func (suite *EngagementServiceTestSuite) TestAddComment_Success() {
	content := publishedContent("item", false)

	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-1").Return(content, nil).Once()
	suite.mockCommentRepo.On("CreateComment", suite.ctx, mock.MatchedBy(func(c domain.Comment) bool {
		return c.ContentID == "content-1" && c.UserID == "user-1" && c.Text == "nice one" && c.ParentCommentID == nil
	})).Return(nil).Once()

	comment, err := suite.service.AddComment(suite.ctx, "content-1", "user-1", "nice one", nil)
	suite.NoError(err)
	suite.NotEmpty(comment.CommentID)
}

func (suite *EngagementServiceTestSuite) TestAddComment_ReplyToOtherContentRejected() {
	content := publishedContent("item", false)
	parentID := "comment-9"
	parent := &domain.Comment{CommentID: parentID, ContentID: "some-other-content"}

	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-1").Return(content, nil).Once()
	suite.mockCommentRepo.On("FindCommentByID", suite.ctx, parentID).Return(parent, nil).Once()

	_, err := suite.service.AddComment(suite.ctx, "content-1", "user-1", "reply", &parentID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "CreateComment")
}

func (suite *EngagementServiceTestSuite) TestAddComment_MissingParentRejected() {
	content := publishedContent("item", false)
	parentID := "missing-parent"

	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-1").Return(content, nil).Once()
	suite.mockCommentRepo.On("FindCommentByID", suite.ctx, parentID).Return(nil, nil).Once()

	_, err := suite.service.AddComment(suite.ctx, "content-1", "user-1", "reply", &parentID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EngagementServiceTestSuite) TestEditComment_OwnershipEnforced() {
	stored := &domain.Comment{CommentID: "comment-1", ContentID: "content-1", UserID: "owner"}

	suite.mockCommentRepo.On("FindCommentByID", suite.ctx, "comment-1").Return(stored, nil).Once()

	_, err := suite.service.EditComment(suite.ctx, "comment-1", "intruder", "hijacked")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "UpdateCommentText")
}

func (suite *EngagementServiceTestSuite) TestEditComment_Success() {
	stored := &domain.Comment{
		CommentID:   "comment-1",
		ContentID:   "content-1",
		UserID:      "owner",
		Text:        "old",
		AuditFields: domain.AuditFields{CreatedAt: time.Now()},
	}

	suite.mockCommentRepo.On("FindCommentByID", suite.ctx, "comment-1").Return(stored, nil).Once()
	suite.mockCommentRepo.On("UpdateCommentText", suite.ctx, "comment-1", "new text").Return(nil).Once()

	comment, err := suite.service.EditComment(suite.ctx, "comment-1", "owner", "new text")
	suite.NoError(err)
	suite.Equal("new text", comment.Text)
}

func (suite *EngagementServiceTestSuite) TestDeleteComment_OwnershipEnforced() {
	stored := &domain.Comment{CommentID: "comment-1", ContentID: "content-1", UserID: "owner"}

	suite.mockCommentRepo.On("FindCommentByID", suite.ctx, "comment-1").Return(stored, nil).Once()

	err := suite.service.DeleteComment(suite.ctx, "comment-1", "intruder")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "DeleteComment")
}

func (suite *EngagementServiceTestSuite) TestDeleteComment_MissingIsNotFound() {
	suite.mockCommentRepo.On("FindCommentByID", suite.ctx, "missing").Return(nil, nil).Once()

	err := suite.service.DeleteComment(suite.ctx, "missing", "user-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EngagementServiceTestSuite) TestGetUserActivity_DeduplicatesCommented() {
	liked := publishedContent("liked-item", false)
	commented := publishedContent("commented-item", false)
	commented.ContentID = "content-2"

	suite.mockLikeRepo.On("FindLikedContentIDs", suite.ctx, "user-1").Return([]string{"content-1"}, nil).Once()
	suite.mockCommentRepo.On("FindCommentedContentIDs", suite.ctx, "user-1").Return([]string{"content-2", "content-2"}, nil).Once()
	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-1").Return(liked, nil).Once()
	suite.mockContentRepo.On("FindContentByID", suite.ctx, "content-2").Return(commented, nil).Once()

	activity, err := suite.service.GetUserActivity(suite.ctx, "user-1")
	suite.NoError(err)
	suite.Len(activity.Liked, 1)
	suite.Len(activity.Commented, 1)
	suite.mockContentRepo.AssertNumberOfCalls(suite.T(), "FindContentByID", 2)
}

func TestEngagementService(t *testing.T) {
	suite.Run(t, new(EngagementServiceTestSuite))
}
