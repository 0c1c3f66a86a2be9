package handlers_test

import (
	"context"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/core/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/handlers"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) UpdateUserName(ctx context.Context, userID, name string) (*domain.User, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) UpgradeToPremium(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, name, email, googleID string) (*domain.User, error) {
	args := m.Called(ctx, name, email, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)

func (m *MockAdminService) RegisterAdmin(ctx context.Context, req dto.AdminRegisterRequest) (*domain.Admin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminService) AuthenticateAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminService) GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// --- Mock ContentService ---
type MockContentService struct {
	mock.Mock
}

var _ portssvc.ContentSvcFacade = (*MockContentService)(nil)

func (m *MockContentService) CreateContent(ctx context.Context, req dto.SaveContentRequest, authorID string) (*domain.Content, error) {
	args := m.Called(ctx, req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Content), args.Error(1)
}

func (m *MockContentService) UpdateContent(ctx context.Context, contentID string, req dto.SaveContentRequest) (*domain.Content, error) {
	args := m.Called(ctx, contentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Content), args.Error(1)
}

func (m *MockContentService) DeleteContent(ctx context.Context, contentID string) error {
	args := m.Called(ctx, contentID)
	return args.Error(0)
}

func (m *MockContentService) GetContentByID(ctx context.Context, contentID string) (*domain.Content, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Content), args.Error(1)
}

func (m *MockContentService) ListContents(ctx context.Context, filter portsrepo.ContentFilter) ([]domain.Content, int64, error) {
	args := m.Called(ctx, filter)
	var contents []domain.Content
	if args.Get(0) != nil {
		contents = args.Get(0).([]domain.Content)
	}
	return contents, args.Get(1).(int64), args.Error(2)
}

func (m *MockContentService) GetContentForViewer(ctx context.Context, slug string, viewerRole domain.Role, viewerIsPremium bool) (*domain.Content, bool, error) {
	args := m.Called(ctx, slug, viewerRole, viewerIsPremium)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Content), args.Bool(1), args.Error(2)
}

func (m *MockContentService) ListPublishedForViewer(ctx context.Context, filter portsrepo.ContentFilter, viewerRole domain.Role, viewerIsPremium bool) ([]portssvc.ContentListing, int64, error) {
	args := m.Called(ctx, filter, viewerRole, viewerIsPremium)
	var listings []portssvc.ContentListing
	if args.Get(0) != nil {
		listings = args.Get(0).([]portssvc.ContentListing)
	}
	return listings, args.Get(1).(int64), args.Error(2)
}

// --- Mock RoadmapService ---
type MockRoadmapService struct {
	mock.Mock
}

var _ portssvc.RoadmapSvcFacade = (*MockRoadmapService)(nil)

func (m *MockRoadmapService) CreateRoadmap(ctx context.Context, req dto.SaveRoadmapRequest, creatorAdminID string) (*domain.Roadmap, error) {
	args := m.Called(ctx, req, creatorAdminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapService) GetRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error) {
	args := m.Called(ctx, roadmapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapService) ListRoadmaps(ctx context.Context, limit, offset int) ([]domain.Roadmap, int64, error) {
	args := m.Called(ctx, limit, offset)
	var roadmaps []domain.Roadmap
	if args.Get(0) != nil {
		roadmaps = args.Get(0).([]domain.Roadmap)
	}
	return roadmaps, args.Get(1).(int64), args.Error(2)
}

func (m *MockRoadmapService) UpdateRoadmap(ctx context.Context, roadmapID string, req dto.SaveRoadmapRequest) (*domain.Roadmap, error) {
	args := m.Called(ctx, roadmapID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapService) DeleteRoadmap(ctx context.Context, roadmapID string) error {
	args := m.Called(ctx, roadmapID)
	return args.Error(0)
}

// --- Mock EngagementService ---
type MockEngagementService struct {
	mock.Mock
}

var _ portssvc.EngagementSvcFacade = (*MockEngagementService)(nil)

func (m *MockEngagementService) ToggleLike(ctx context.Context, contentID, userID string) (bool, int64, error) {
	args := m.Called(ctx, contentID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockEngagementService) CountLikes(ctx context.Context, contentID string) (int64, error) {
	args := m.Called(ctx, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementService) AddComment(ctx context.Context, contentID, userID, text string, parentCommentID *string) (*domain.Comment, error) {
	args := m.Called(ctx, contentID, userID, text, parentCommentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockEngagementService) ListComments(ctx context.Context, contentID string) ([]domain.Comment, error) {
	args := m.Called(ctx, contentID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockEngagementService) EditComment(ctx context.Context, commentID, userID, text string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockEngagementService) DeleteComment(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockEngagementService) GetUserActivity(ctx context.Context, userID string) (*portssvc.UserActivity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.UserActivity), args.Error(1)
}

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}

// --- Router harness ---

// mockServices bundles the per-test mocks behind the real route wiring.
type mockServices struct {
	user       *MockUserService
	admin      *MockAdminService
	content    *MockContentService
	roadmap    *MockRoadmapService
	engagement *MockEngagementService
	oauth      *MockGoogleOAuthService
	token      portssvc.TokenSvcFacade
}

func newMockServices() *mockServices {
	cfg := testConfig()
	return &mockServices{
		user:       new(MockUserService),
		admin:      new(MockAdminService),
		content:    new(MockContentService),
		roadmap:    new(MockRoadmapService),
		engagement: new(MockEngagementService),
		oauth:      new(MockGoogleOAuthService),
		token:      services.NewTokenService(cfg),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finlearn-test",
		FrontendBaseURL:   "http://localhost:3000",
		IsProduction:      true, // skip swagger wiring in tests
	}
}

// newTestRouter builds a gin engine with the real middleware and routes on
// top of the mocks, mirroring production wiring.
func newTestRouter(m *mockServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	container := &portssvc.ServiceContainer{
		Token:       m.token,
		GoogleOAuth: m.oauth,
		User:        m.user,
		Admin:       m.admin,
		Content:     m.content,
		Roadmap:     m.roadmap,
		Engagement:  m.engagement,
	}
	handlers.RegisterRoutes(r, testConfig(), container)
	return r
}
