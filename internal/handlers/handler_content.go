package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the viewer-facing content surface and the admin CRUD
// surface. Viewer reads go through the entitlement rule in the service; the
// handler only resolves who the viewer is.
type ContentHandler struct {
	contentService portssvc.ContentSvcFacade
	userService    portssvc.UserSvcFacade
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(cs portssvc.ContentSvcFacade, us portssvc.UserSvcFacade) *ContentHandler {
	return &ContentHandler{contentService: cs, userService: us}
}

// registerContentViewerRoutes registers the public content routes. The group
// is expected to carry OptionalAuth so logged-in viewers are recognized.
func registerContentViewerRoutes(rg *gin.RouterGroup, h *ContentHandler) {
	content := rg.Group("/content")
	{
		content.GET("", h.ListContent)
		content.GET("/:slug", h.GetContentBySlug)
	}
}

// registerContentAdminRoutes registers the admin CRUD routes. The group is
// expected to carry RequireAuth and RequireRole(admin).
func registerContentAdminRoutes(rg *gin.RouterGroup, h *ContentHandler) {
	content := rg.Group("/content")
	{
		content.POST("", h.CreateContent)
		content.GET("", h.ListContentAdmin)
		content.GET("/:id", h.GetContentByID)
		content.PUT("/:id", h.UpdateContent)
		content.DELETE("/:id", h.DeleteContent)
	}
}

// viewerEntitlement resolves the requesting viewer's role and premium flag.
// Anonymous viewers are plain non-premium users for entitlement purposes. The
// premium flag is read from the database rather than the token so an upgrade
// takes effect without reissuing the token.
func (h *ContentHandler) viewerEntitlement(c *gin.Context) (domain.Role, bool) {
	role, ok := middleware.GetRoleFromContext(c)
	if !ok {
		return domain.RoleUser, false
	}
	if role == domain.RoleAdmin {
		return role, false
	}

	userID, ok := middleware.GetSubjectIDFromContext(c)
	if !ok {
		return role, false
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to resolve viewer premium flag",
			slog.String("user_id", userID), slog.String("error", err.Error()))
		return role, false
	}
	return role, user.IsPremium
}

// ListContent godoc
// @Summary List published content
// @Description Lists published content with per-item teaser flags for the requesting viewer.
// @Tags content
// @Produce json
// @Param level query string false "Filter by level" Enums(beginner, intermediate, advanced)
// @Param topic query string false "Filter by topic"
// @Param type query string false "Filter by type" Enums(article, video)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListResponse[dto.ContentResponse]
// @Failure 400 {object} ErrorResponse
// @Router /content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListContentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	role, isPremium := h.viewerEntitlement(c)
	filter := portsrepo.ContentFilter{
		Level:  domain.ContentLevel(params.Level),
		Topic:  params.Topic,
		Type:   domain.ContentType(params.Type),
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	listings, total, err := h.contentService.ListPublishedForViewer(c.Request.Context(), filter, role, isPremium)
	if err != nil {
		logger.Error("Failed to list content", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list content"})
		return
	}

	items := make([]dto.ContentResponse, len(listings))
	for i := range listings {
		items[i] = dto.ToContentResponse(&listings[i].Content, listings[i].Teaser)
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total))
}

// GetContentBySlug godoc
// @Summary Get content by slug
// @Description Returns a single content item for the requesting viewer. Premium items come back as teasers for non-entitled viewers; unpublished items are not found unless the viewer is an admin.
// @Tags content
// @Produce json
// @Param slug path string true "Content slug"
// @Success 200 {object} dto.ContentResponse
// @Failure 404 {object} ErrorResponse
// @Router /content/{slug} [get]
func (h *ContentHandler) GetContentBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	role, isPremium := h.viewerEntitlement(c)
	content, teaser, err := h.contentService.GetContentForViewer(c.Request.Context(), slug, role, isPremium)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
			return
		}
		logger.Error("Failed to get content", slog.String("slug", slug), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get content"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContentResponse(content, teaser))
}

// CreateContent godoc
// @Summary Create content
// @Description Creates a content item. Publishing stamps the publication time.
// @Tags admin-content
// @Accept json
// @Produce json
// @Param content body dto.SaveContentRequest true "Content fields"
// @Success 201 {object} dto.ContentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetSubjectIDFromContext(c)
	content, err := h.contentService.CreateContent(c.Request.Context(), req, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Slug already in use"})
			return
		}
		logger.Error("Failed to create content", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create content"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToContentResponse(content, false))
}

// ListContentAdmin godoc
// @Summary List content (admin)
// @Description Lists content in any status with full bodies.
// @Tags admin-content
// @Produce json
// @Param status query string false "Filter by status" Enums(draft, published, archived)
// @Param level query string false "Filter by level" Enums(beginner, intermediate, advanced)
// @Param topic query string false "Filter by topic"
// @Param type query string false "Filter by type" Enums(article, video)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListResponse[dto.ContentResponse]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/content [get]
func (h *ContentHandler) ListContentAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListContentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	status := c.Query("status")

	filter := portsrepo.ContentFilter{
		Level:  domain.ContentLevel(params.Level),
		Topic:  params.Topic,
		Type:   domain.ContentType(params.Type),
		Status: domain.ContentStatus(status),
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	contents, total, err := h.contentService.ListContents(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list content", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list content"})
		return
	}

	items := make([]dto.ContentResponse, len(contents))
	for i := range contents {
		items[i] = dto.ToContentResponse(&contents[i], false)
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total))
}

// GetContentByID godoc
// @Summary Get content by id (admin)
// @Tags admin-content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} dto.ContentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/content/{id} [get]
func (h *ContentHandler) GetContentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contentID := c.Param("id")

	content, err := h.contentService.GetContentByID(c.Request.Context(), contentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
			return
		}
		logger.Error("Failed to get content", slog.String("content_id", contentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get content"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContentResponse(content, false))
}

// UpdateContent godoc
// @Summary Update content
// @Description Updates a content item. The first transition to published stamps the publication time.
// @Tags admin-content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param content body dto.SaveContentRequest true "Content fields"
// @Success 200 {object} dto.ContentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/content/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contentID := c.Param("id")

	var req dto.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	content, err := h.contentService.UpdateContent(c.Request.Context(), contentID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Slug already in use"})
		default:
			logger.Error("Failed to update content", slog.String("content_id", contentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update content"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToContentResponse(content, false))
}

// DeleteContent godoc
// @Summary Delete content
// @Tags admin-content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contentID := c.Param("id")

	if err := h.contentService.DeleteContent(c.Request.Context(), contentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
			return
		}
		logger.Error("Failed to delete content", slog.String("content_id", contentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Content deleted"})
}
