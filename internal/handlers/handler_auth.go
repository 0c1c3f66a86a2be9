package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles credential login and registration for both identity
// classes. Token issuance is delegated to the token service.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	adminService portssvc.AdminSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, as portssvc.AdminSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		adminService: as,
		tokenService: ts,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication. Login endpoints
// get the rate limiter; registration and logout do not.
func registerAuthRoutes(rg *gin.RouterGroup, h *AuthHandler, limitMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/user/register", h.RegisterUser)
		auth.POST("/user/login", limitMiddleware, h.LoginUser)
		auth.POST("/admin/register", h.RegisterAdmin)
		auth.POST("/admin/login", limitMiddleware, h.LoginAdmin)
		auth.POST("/admin/logout", h.LogoutAdmin)
	}
}

// RegisterUser godoc
// @Summary Register a user account
// @Description Creates a local-credential user and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User registration info"
// @Success 201 {object} dto.UserLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/user/register [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	token, _, err := h.tokenService.Issue(c.Request.Context(), user.UserID, domain.RoleUser)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, dto.UserLoginResponse{Token: token, Role: domain.RoleUser})
}

// LoginUser godoc
// @Summary User login
// @Description Authenticates a user and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.UserLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/user/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	token, _, err := h.tokenService.Issue(c.Request.Context(), user.UserID, domain.RoleUser)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.UserLoginResponse{Token: token, Role: domain.RoleUser})
}

// RegisterAdmin godoc
// @Summary Register an admin account
// @Description Creates a back-office admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.AdminRegisterRequest true "Admin registration info"
// @Success 201 {object} dto.AdminSummary
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/admin/register [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	admin, err := h.adminService.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register admin", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register admin"})
		return
	}

	c.JSON(http.StatusCreated, dto.AdminSummary{ID: admin.AdminID, Name: admin.Name})
}

// LoginAdmin godoc
// @Summary Admin login
// @Description Authenticates an admin and returns a bearer token with role "admin".
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	admin, err := h.adminService.AuthenticateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate admin", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	token, _, err := h.tokenService.Issue(c.Request.Context(), admin.AdminID, domain.RoleAdmin)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Token: token,
		Admin: dto.AdminSummary{ID: admin.AdminID, Name: admin.Name},
	})
}

// LogoutAdmin godoc
// @Summary Admin logout
// @Description Acknowledges logout. Tokens are stateless; the client clears its session.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/admin/logout [post]
func (h *AuthHandler) LogoutAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Admin logged out"})
}
