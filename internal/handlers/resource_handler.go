package handlers

import (
	"net/http"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/paperpup/studyshare/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResourceHandler handles HTTP requests related to resources
type ResourceHandler struct {
	resourceRepository repositories.ResourceRepository
	userRepository     repositories.UserRepository
}

// NewResourceHandler creates a new ResourceHandler
func NewResourceHandler(resourceRepo repositories.ResourceRepository, userRepo repositories.UserRepository) *ResourceHandler {
	return &ResourceHandler{
		resourceRepository: resourceRepo,
		userRepository:     userRepo,
	}
}

// RegisterResourceActions registers resource-related actions
func (h *ResourceHandler) RegisterResourceActions(actions ActionMap) {
	actions["getResources"] = h.GetResources
	actions["createResource"] = h.CreateResource
	actions["updateResource"] = h.UpdateResource
	actions["deleteResource"] = h.DeleteResource
	actions["getUserResources"] = h.GetUserResources
}

// GetResources returns either a single resource view (id given) or the list
// of resources visible to the viewer: public ones plus the viewer's own.
func (h *ResourceHandler) GetResources(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid resource id")
		}
		view, err := h.resourceRepository.GetResourceView(ctx, id)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, view)
	}

	viewerID := uint(0)
	if raw := c.QueryParam("userId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid userId")
		}
		viewerID = id
	} else {
		var body struct {
			UserID uint `json:"userId"`
		}
		// Body is optional; anonymous viewers see public resources only.
		_ = c.Bind(&body)
		viewerID = body.UserID
	}

	views, err := h.resourceRepository.ListVisibleResources(ctx, viewerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateResource creates a resource owned by the acting user. The author's
// course is copied onto the resource at creation time and frozen there.
func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req models.CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields (title, url, category_id, user_id)")
	}

	ctx := c.Request().Context()

	author, err := h.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil || author.CourseID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user or user has no course assigned")
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		CategoryID:  req.CategoryID,
		CourseID:    author.CourseID,
		AuthorID:    author.ID,
		IsPublic:    req.IsPublic,
	}

	if err := h.resourceRepository.CreateResource(ctx, resource); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":     true,
		"resource_id": resource.ID,
	})
}

// UpdateResource applies a partial update to a resource the acting user
// owns and returns the refreshed view.
func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	var req models.UpdateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.ResourceID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "resource_id required")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	resource, err := h.resourceRepository.GetResourceByID(ctx, req.ResourceID)
	if err != nil {
		return httpError(err)
	}
	if resource.AuthorID != req.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this resource")
	}

	if err := h.resourceRepository.UpdateResource(ctx, req.ResourceID, req.Patch()); err != nil {
		return httpError(err)
	}

	view, err := h.resourceRepository.GetResourceView(ctx, req.ResourceID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteResource soft-deletes a resource the acting user owns. Deleting an
// already-deleted resource is a no-op with the same response.
func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	var req models.DeleteResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	resource, err := h.resourceRepository.GetResourceByID(ctx, req.ResourceID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"message": "Resource deleted"})
		}
		return httpError(err)
	}
	if resource.AuthorID != req.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this resource")
	}

	if err := h.resourceRepository.SoftDeleteResource(ctx, req.ResourceID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Resource deleted"})
}

// GetUserResources returns the acting user's own resource summaries
func (h *ResourceHandler) GetUserResources(c echo.Context) error {
	raw := c.QueryParam("userId")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId required")
	}
	userID, err := parseID(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid userId")
	}

	summaries, err := h.resourceRepository.ListResourcesByAuthor(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summaries)
}
