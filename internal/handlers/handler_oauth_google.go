package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/middleware"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler runs the server half of the OAuth bridge: redirect to
// Google, then exchange the returned assertion for a locally issued token
// and hand it to the frontend callback page.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendBaseURL    string
	secureCookies      bool
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		frontendBaseURL:    cfg.FrontendBaseURL,
		secureCookies:      cfg.IsProduction,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes on the root
// engine; these live outside /api to match the provider redirect URIs.
func registerGoogleOAuthRoutes(r *gin.Engine, h *GoogleOAuthHandler) {
	google := r.Group("/auth/google")
	{
		google.GET("", h.BeginGoogleLogin)
		google.GET("/callback", h.GoogleCallback)
	}
}

// BeginGoogleLogin godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's consent screen.
// @Tags oauth
// @Success 302
// @Router /auth/google [get]
func (h *GoogleOAuthHandler) BeginGoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		h.redirectToLoginWithError(c)
		return
	}

	// Short-lived CSRF cookie checked on the callback leg.
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchanges the provider assertion for a locally issued token and redirects to the frontend callback with it.
// @Tags oauth
// @Success 302
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		logger.Warn("OAuth state mismatch or missing")
		h.redirectToLoginWithError(c)
		return
	}
	// State is single use.
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	code := c.Query("code")
	if code == "" {
		logger.Warn("OAuth callback missing authorization code")
		h.redirectToLoginWithError(c)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		h.redirectToLoginWithError(c)
		return
	}

	profile, err := h.googleOAuthService.FetchProfile(ctx, oauth2Token)
	if err != nil {
		logger.Error("Failed to fetch Google profile", slog.String("error", err.Error()))
		h.redirectToLoginWithError(c)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, profile.Name, profile.Email, profile.ID)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()), slog.String("google_user_id", profile.ID))
		h.redirectToLoginWithError(c)
		return
	}

	token, _, err := h.tokenService.Issue(ctx, user.UserID, domain.RoleUser)
	if err != nil {
		logger.Error("Failed to issue token for Google user", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		h.redirectToLoginWithError(c)
		return
	}

	logger.Info("Google login completed", slog.String("user_id", user.UserID))
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/user/google/callback?token="+url.QueryEscape(token))
}

func (h *GoogleOAuthHandler) redirectToLoginWithError(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/user/login?error=oauth_failed")
}
