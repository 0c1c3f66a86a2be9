package handlers

import (
	"log/slog"

	"github.com/finlearnhq/finlearn_backend/cmd/docs"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/middleware"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	dto.RegisterCustomValidations()

	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", GetHealth)

	registerPublicRoutes(r, cfg, services)
	setupAPIRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return corsCfg
}

// registerPublicRoutes wires authentication, OAuth and the anonymous-readable
// content surface. Public content routes carry OptionalAuth so entitlement
// can see who is asking without requiring a token.
func registerPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	loginLimiter, err := middleware.NewLoginLimiter("5-M", cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to build login rate limiter", slog.String("error", err.Error()))
		panic(err)
	}

	authHandler := NewAuthHandler(services.User, services.Admin, services.Token)
	registerAuthRoutes(r.Group("/api"), authHandler, middleware.RateLimit(loginLimiter))

	oauthHandler := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token, cfg)
	registerGoogleOAuthRoutes(r, oauthHandler)

	contentHandler := NewContentHandler(services.Content, services.User)
	roadmapHandler := NewRoadmapHandler(services.Roadmap)
	engagementHandler := NewEngagementHandler(services.Engagement)

	public := r.Group("/api", middleware.OptionalAuth(cfg.JWTSecret))
	registerContentViewerRoutes(public, contentHandler)
	registerRoadmapViewerRoutes(public, roadmapHandler)
	registerEngagementPublicRoutes(public, engagementHandler)
}

// setupAPIRoutes configures the authenticated groups. /api/user requires the
// user role, /api/admin the admin role; a valid token of the wrong role gets
// 403 rather than 401.
func setupAPIRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	contentHandler := NewContentHandler(services.Content, services.User)
	roadmapHandler := NewRoadmapHandler(services.Roadmap)
	engagementHandler := NewEngagementHandler(services.Engagement)

	userGate := []gin.HandlerFunc{
		middleware.RequireAuth(cfg.JWTSecret),
		middleware.RequireRole(domain.RoleUser),
	}
	registerUserRoutes(r.Group("/api/user", userGate...), services.User)
	registerEngagementUserRoutes(r.Group("/api", userGate...), engagementHandler)

	adminGroup := r.Group("/api/admin",
		middleware.RequireAuth(cfg.JWTSecret),
		middleware.RequireRole(domain.RoleAdmin),
	)
	registerContentAdminRoutes(adminGroup, contentHandler)
	registerRoadmapAdminRoutes(adminGroup, roadmapHandler)
	registerUserAdminRoutes(adminGroup, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
