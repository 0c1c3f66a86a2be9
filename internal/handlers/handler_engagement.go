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

// EngagementHandler serves likes, comments and the per-user activity feed.
type EngagementHandler struct {
	engagementService portssvc.EngagementSvcFacade
}

// NewEngagementHandler creates a new EngagementHandler.
func NewEngagementHandler(es portssvc.EngagementSvcFacade) *EngagementHandler {
	return &EngagementHandler{engagementService: es}
}

// registerEngagementPublicRoutes registers the read-only engagement routes.
func registerEngagementPublicRoutes(rg *gin.RouterGroup, h *EngagementHandler) {
	rg.GET("/likes/:contentID", h.GetLikeCount)
	rg.GET("/comments/:contentID", h.ListComments)
}

// registerEngagementUserRoutes registers the write routes. The group is
// expected to carry RequireAuth and RequireRole(user).
func registerEngagementUserRoutes(rg *gin.RouterGroup, h *EngagementHandler) {
	rg.POST("/likes", h.ToggleLike)
	rg.POST("/comments", h.AddComment)
	rg.PUT("/comments/:id", h.EditComment)
	rg.DELETE("/comments/:id", h.DeleteComment)
	rg.GET("/activity", h.GetActivity)
}

// ToggleLike godoc
// @Summary Toggle a like
// @Description Likes the content if not yet liked by the caller, otherwise removes the like.
// @Tags engagement
// @Accept json
// @Produce json
// @Param like body dto.ToggleLikeRequest true "Content to toggle"
// @Success 200 {object} dto.ToggleLikeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /likes [post]
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	liked, count, err := h.engagementService.ToggleLike(c.Request.Context(), req.ContentID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
			return
		}
		logger.Error("Failed to toggle like", slog.String("content_id", req.ContentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, dto.ToggleLikeResponse{Liked: liked, Count: count})
}

// GetLikeCount godoc
// @Summary Like count for a content item
// @Tags engagement
// @Produce json
// @Param contentID path string true "Content ID"
// @Success 200 {object} dto.LikeCountResponse
// @Router /likes/{contentID} [get]
func (h *EngagementHandler) GetLikeCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contentID := c.Param("contentID")

	count, err := h.engagementService.CountLikes(c.Request.Context(), contentID)
	if err != nil {
		logger.Error("Failed to count likes", slog.String("content_id", contentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to count likes"})
		return
	}

	c.JSON(http.StatusOK, dto.LikeCountResponse{ContentID: contentID, Count: count})
}

// AddComment godoc
// @Summary Add a comment
// @Description Adds a comment, optionally replying to another comment on the same content.
// @Tags engagement
// @Accept json
// @Produce json
// @Param comment body dto.AddCommentRequest true "Comment fields"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments [post]
func (h *EngagementHandler) AddComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	comment, err := h.engagementService.AddComment(c.Request.Context(), req.ContentID, userID, req.Text, req.ParentCommentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid parent comment"})
		default:
			logger.Error("Failed to add comment", slog.String("content_id", req.ContentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// ListComments godoc
// @Summary List comments for a content item
// @Tags engagement
// @Produce json
// @Param contentID path string true "Content ID"
// @Success 200 {object} dto.ListResponse[dto.CommentResponse]
// @Router /comments/{contentID} [get]
func (h *EngagementHandler) ListComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contentID := c.Param("contentID")

	comments, err := h.engagementService.ListComments(c.Request.Context(), contentID)
	if err != nil {
		logger.Error("Failed to list comments", slog.String("content_id", contentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list comments"})
		return
	}

	items := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		items[i] = dto.ToCommentResponse(&comments[i])
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, int64(len(items))))
}

// EditComment godoc
// @Summary Edit own comment
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body dto.EditCommentRequest true "New text"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{id} [put]
func (h *EngagementHandler) EditComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("id")

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	comment, err := h.engagementService.EditComment(c.Request.Context(), commentID, userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Comment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not your comment"})
		default:
			logger.Error("Failed to edit comment", slog.String("comment_id", commentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to edit comment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// DeleteComment godoc
// @Summary Delete own comment
// @Description Deletes a comment the caller owns. Replies to it are removed as well.
// @Tags engagement
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("id")

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.engagementService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Comment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not your comment"})
		default:
			logger.Error("Failed to delete comment", slog.String("comment_id", commentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Comment deleted"})
}

// GetActivity godoc
// @Summary Own engagement activity
// @Description Returns the content the caller has liked and commented on.
// @Tags engagement
// @Produce json
// @Success 200 {object} services.UserActivity
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity [get]
func (h *EngagementHandler) GetActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	activity, err := h.engagementService.GetUserActivity(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get activity", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get activity"})
		return
	}

	c.JSON(http.StatusOK, activity)
}
