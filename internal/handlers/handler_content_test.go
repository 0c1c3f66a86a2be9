package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ContentHandlerTestSuite struct {
	suite.Suite
	mocks  *mockServices
	router *gin.Engine
}

func (suite *ContentHandlerTestSuite) SetupTest() {
	suite.mocks = newMockServices()
	suite.router = newTestRouter(suite.mocks)
}

func (suite *ContentHandlerTestSuite) bearerFor(subjectID string, role domain.Role) string {
	token, err := utils.GenerateJWT(subjectID, role, testJWTSecret, time.Hour, "finlearn-test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *ContentHandlerTestSuite) request(method, path, authHeader string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func premiumArticle(slug string) *domain.Content {
	now := time.Now()
	return &domain.Content{
		ContentID:   "content-1",
		Title:       "Index Funds Explained",
		Slug:        slug,
		Summary:     "Why index funds work",
		Types:       []domain.ContentType{domain.ContentTypeArticle},
		Level:       domain.LevelBeginner,
		Body:        "the full premium body",
		Status:      domain.StatusPublished,
		PublishedAt: &now,
		IsPremium:   true,
	}
}

func (suite *ContentHandlerTestSuite) TestGetContent_AnonymousGetsTeaser() {
	content := premiumArticle("index-funds")

	suite.mocks.content.On("GetContentForViewer", mock.Anything, "index-funds", domain.RoleUser, false).
		Return(content, true, nil).Once()

	w := suite.request(http.MethodGet, "/api/content/index-funds", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isTeaser":true`)
	suite.NotContains(w.Body.String(), "the full premium body")
	suite.mocks.user.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *ContentHandlerTestSuite) TestGetContent_PremiumFlagReadFromDatabase() {
	content := premiumArticle("index-funds")
	viewer := &domain.User{UserID: "user-1", IsPremium: true}

	suite.mocks.user.On("GetUserByID", mock.Anything, "user-1").Return(viewer, nil).Once()
	suite.mocks.content.On("GetContentForViewer", mock.Anything, "index-funds", domain.RoleUser, true).
		Return(content, false, nil).Once()

	w := suite.request(http.MethodGet, "/api/content/index-funds", suite.bearerFor("user-1", domain.RoleUser), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "the full premium body")
	suite.Contains(w.Body.String(), `"isTeaser":false`)
}

func (suite *ContentHandlerTestSuite) TestGetContent_UnknownSlugIs404() {
	suite.mocks.content.On("GetContentForViewer", mock.Anything, "missing", domain.RoleUser, false).
		Return(nil, false, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/content/missing", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ContentHandlerTestSuite) TestListContent_TeaserPerItem() {
	free := premiumArticle("free-item")
	free.IsPremium = false
	listings := []portssvc.ContentListing{
		{Content: *free, Teaser: false},
		{Content: *premiumArticle("premium-item"), Teaser: true},
	}

	suite.mocks.content.On("ListPublishedForViewer", mock.Anything, mock.Anything, domain.RoleUser, false).
		Return(listings, int64(2), nil).Once()

	w := suite.request(http.MethodGet, "/api/content", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"total":2`)
}

func (suite *ContentHandlerTestSuite) TestAdminContent_NoTokenIs401() {
	w := suite.request(http.MethodPost, "/api/admin/content", "", gin.H{})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mocks.content.AssertNotCalled(suite.T(), "CreateContent")
}

func (suite *ContentHandlerTestSuite) TestAdminContent_UserTokenIs403() {
	w := suite.request(http.MethodPost, "/api/admin/content", suite.bearerFor("user-1", domain.RoleUser), gin.H{})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mocks.content.AssertNotCalled(suite.T(), "CreateContent")
}

func (suite *ContentHandlerTestSuite) TestAdminContent_CreateSuccess() {
	created := premiumArticle("index-funds")

	suite.mocks.content.On("CreateContent", mock.Anything, mock.Anything, "admin-1").
		Return(created, nil).Once()

	w := suite.request(http.MethodPost, "/api/admin/content", suite.bearerFor("admin-1", domain.RoleAdmin), gin.H{
		"title":     "Index Funds Explained",
		"slug":      "index-funds",
		"types":     []string{"article"},
		"level":     "beginner",
		"status":    "published",
		"isPremium": true,
	})
	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), "index-funds")
}

func (suite *ContentHandlerTestSuite) TestAdminContent_DuplicateSlugIs409() {
	suite.mocks.content.On("CreateContent", mock.Anything, mock.Anything, "admin-1").
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.request(http.MethodPost, "/api/admin/content", suite.bearerFor("admin-1", domain.RoleAdmin), gin.H{
		"title":  "Index Funds Explained",
		"slug":   "index-funds",
		"types":  []string{"article"},
		"level":  "beginner",
		"status": "draft",
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ContentHandlerTestSuite) TestAdminUsers_ListWithAdminToken() {
	users := []domain.User{{UserID: "user-1", Name: "Asha", Email: "asha@example.com", Provider: domain.ProviderLocal}}

	suite.mocks.user.On("ListUsers", mock.Anything, mock.Anything, mock.Anything).
		Return(users, int64(1), nil).Once()

	w := suite.request(http.MethodGet, "/api/admin/users", suite.bearerFor("admin-1", domain.RoleAdmin), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "asha@example.com")
}

func (suite *ContentHandlerTestSuite) TestToggleLike_RequiresUserRole() {
	w := suite.request(http.MethodPost, "/api/likes", suite.bearerFor("admin-1", domain.RoleAdmin), gin.H{
		"contentId": "content-1",
	})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mocks.engagement.AssertNotCalled(suite.T(), "ToggleLike")
}

func (suite *ContentHandlerTestSuite) TestToggleLike_Success() {
	suite.mocks.engagement.On("ToggleLike", mock.Anything, "content-1", "user-1").
		Return(true, int64(3), nil).Once()

	w := suite.request(http.MethodPost, "/api/likes", suite.bearerFor("user-1", domain.RoleUser), gin.H{
		"contentId": "content-1",
	})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"liked":true`)
	suite.Contains(w.Body.String(), `"count":3`)
}

func (suite *ContentHandlerTestSuite) TestLikeCount_PublicEndpoint() {
	suite.mocks.engagement.On("CountLikes", mock.Anything, "content-1").
		Return(int64(7), nil).Once()

	w := suite.request(http.MethodGet, "/api/likes/content-1", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"count":7`)
}

func TestContentHandler(t *testing.T) {
	suite.Run(t, new(ContentHandlerTestSuite))
}
