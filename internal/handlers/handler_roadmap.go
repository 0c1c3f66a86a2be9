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

// RoadmapHandler serves learning roadmaps. Reads are public; writes are
// admin only.
type RoadmapHandler struct {
	roadmapService portssvc.RoadmapSvcFacade
}

// NewRoadmapHandler creates a new RoadmapHandler.
func NewRoadmapHandler(rs portssvc.RoadmapSvcFacade) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: rs}
}

func registerRoadmapViewerRoutes(rg *gin.RouterGroup, h *RoadmapHandler) {
	roadmaps := rg.Group("/roadmaps")
	{
		roadmaps.GET("", h.ListRoadmaps)
		roadmaps.GET("/:id", h.GetRoadmap)
	}
}

func registerRoadmapAdminRoutes(rg *gin.RouterGroup, h *RoadmapHandler) {
	roadmaps := rg.Group("/roadmaps")
	{
		roadmaps.POST("", h.CreateRoadmap)
		roadmaps.PUT("/:id", h.UpdateRoadmap)
		roadmaps.DELETE("/:id", h.DeleteRoadmap)
	}
}

// ListRoadmaps godoc
// @Summary List roadmaps
// @Tags roadmaps
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListResponse[dto.RoadmapResponse]
// @Router /roadmaps [get]
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	roadmaps, total, err := h.roadmapService.ListRoadmaps(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list roadmaps", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list roadmaps"})
		return
	}

	items := make([]dto.RoadmapResponse, len(roadmaps))
	for i := range roadmaps {
		items[i] = dto.ToRoadmapResponse(&roadmaps[i])
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total))
}

// GetRoadmap godoc
// @Summary Get a roadmap
// @Tags roadmaps
// @Produce json
// @Param id path string true "Roadmap ID"
// @Success 200 {object} dto.RoadmapResponse
// @Failure 404 {object} ErrorResponse
// @Router /roadmaps/{id} [get]
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roadmapID := c.Param("id")

	roadmap, err := h.roadmapService.GetRoadmapByID(c.Request.Context(), roadmapID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Roadmap not found"})
			return
		}
		logger.Error("Failed to get roadmap", slog.String("roadmap_id", roadmapID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get roadmap"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRoadmapResponse(roadmap))
}

// CreateRoadmap godoc
// @Summary Create a roadmap
// @Description Creates a roadmap with ordered steps per level.
// @Tags admin-roadmaps
// @Accept json
// @Produce json
// @Param roadmap body dto.SaveRoadmapRequest true "Roadmap fields"
// @Success 201 {object} dto.RoadmapResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/roadmaps [post]
func (h *RoadmapHandler) CreateRoadmap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetSubjectIDFromContext(c)
	roadmap, err := h.roadmapService.CreateRoadmap(c.Request.Context(), req, adminID)
	if err != nil {
		logger.Error("Failed to create roadmap", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create roadmap"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoadmapResponse(roadmap))
}

// UpdateRoadmap godoc
// @Summary Update a roadmap
// @Description Replaces the roadmap's fields and level lists wholesale.
// @Tags admin-roadmaps
// @Accept json
// @Produce json
// @Param id path string true "Roadmap ID"
// @Param roadmap body dto.SaveRoadmapRequest true "Roadmap fields"
// @Success 200 {object} dto.RoadmapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/roadmaps/{id} [put]
func (h *RoadmapHandler) UpdateRoadmap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roadmapID := c.Param("id")

	var req dto.SaveRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	roadmap, err := h.roadmapService.UpdateRoadmap(c.Request.Context(), roadmapID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Roadmap not found"})
			return
		}
		logger.Error("Failed to update roadmap", slog.String("roadmap_id", roadmapID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update roadmap"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRoadmapResponse(roadmap))
}

// DeleteRoadmap godoc
// @Summary Delete a roadmap
// @Tags admin-roadmaps
// @Produce json
// @Param id path string true "Roadmap ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/roadmaps/{id} [delete]
func (h *RoadmapHandler) DeleteRoadmap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roadmapID := c.Param("id")

	if err := h.roadmapService.DeleteRoadmap(c.Request.Context(), roadmapID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Roadmap not found"})
			return
		}
		logger.Error("Failed to delete roadmap", slog.String("roadmap_id", roadmapID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete roadmap"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Roadmap deleted"})
}
