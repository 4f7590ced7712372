package handlers

import (
	"net/http"

	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/paperpup/studyshare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to upvotes
type LikeHandler struct {
	likeRepository     repositories.LikeRepository
	resourceRepository repositories.ResourceRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, resourceRepo repositories.ResourceRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:     likeRepo,
		resourceRepository: resourceRepo,
	}
}

// RegisterLikeActions registers upvote-related actions
func (h *LikeHandler) RegisterLikeActions(actions ActionMap) {
	actions["toggleLike"] = h.ToggleLike
}

// ToggleLike flips the (user, resource) upvote membership and returns the
// refreshed resource view. The client infers its own like state from the
// upvote list, so no separate like/unlike endpoints exist.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.UserID == 0 || req.ResourceID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and resource_id required")
	}

	ctx := c.Request().Context()

	// Verify resource exists and is not deleted
	if _, err := h.resourceRepository.GetResourceByID(ctx, req.ResourceID); err != nil {
		return httpError(err)
	}

	if _, err := h.likeRepository.ToggleLike(ctx, req.UserID, req.ResourceID); err != nil {
		return httpError(err)
	}

	view, err := h.resourceRepository.GetResourceView(ctx, req.ResourceID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}
