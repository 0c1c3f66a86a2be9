package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler serves the authenticated user's own profile surface. The
// subject id always comes from the auth gate, never from the payload.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers the profile routes. The group is expected to
// carry RequireAuth and RequireRole(user).
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.updateProfile)
	rg.DELETE("/profile", h.deleteProfile)
	rg.POST("/upgrade", h.upgrade)
}

// registerUserAdminRoutes registers the back-office user listing. The group
// is expected to carry RequireAuth and RequireRole(admin).
func registerUserAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	rg.GET("/users", h.listUsers)
}

// getProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile, including the premium flag the client session mirrors.
// @Tags user
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to get profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileResponse(user))
}

// updateProfile godoc
// @Summary Update own profile
// @Description Updates the authenticated user's display name.
// @Tags user
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Name == nil || *req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name is required"})
		return
	}

	user, err := h.userService.UpdateUserName(c.Request.Context(), userID, *req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileResponse(user))
}

// deleteProfile godoc
// @Summary Delete own account
// @Description Removes the authenticated user's account and its engagement records.
// @Tags user
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/profile [delete]
func (h *userHandler) deleteProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to delete account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Account deleted"})
}

// listUsers godoc
// @Summary List users (admin)
// @Tags admin-users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListResponse[dto.UserSummaryResponse]
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}

	items := make([]dto.UserSummaryResponse, len(users))
	for i := range users {
		items[i] = dto.ToUserSummaryResponse(&users[i])
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total))
}

// upgrade godoc
// @Summary Upgrade to premium
// @Description Marks the authenticated user premium and records the purchase. The client must refresh its session afterwards.
// @Tags user
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/upgrade [post]
func (h *userHandler) upgrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.UpgradeToPremium(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to upgrade user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upgrade"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileResponse(user))
}
