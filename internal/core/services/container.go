package services

import (
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
)

// Repositories bundles the repository implementations the services run on.
type Repositories struct {
	User     portsrepo.UserRepository
	Admin    portsrepo.AdminRepository
	Purchase portsrepo.PurchaseRepository
	Content  portsrepo.ContentRepository
	Roadmap  portsrepo.RoadmapRepository
	Like     portsrepo.LikeRepository
	Comment  portsrepo.CommentRepository
}

// NewServiceContainer wires every service implementation into the container
// handed to the HTTP layer.
func NewServiceContainer(cfg *config.Config, repos Repositories) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		User:        NewUserService(repos.User, repos.Purchase, cfg),
		Admin:       NewAdminService(repos.Admin),
		Content:     NewContentService(repos.Content),
		Roadmap:     NewRoadmapService(repos.Roadmap),
		Engagement:  NewEngagementService(repos.Like, repos.Comment, repos.Content),
	}
}
