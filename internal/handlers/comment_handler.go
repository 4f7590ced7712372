package handlers

import (
	"net/http"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/paperpup/studyshare/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository  repositories.CommentRepository
	resourceRepository repositories.ResourceRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, resourceRepo repositories.ResourceRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository:  commentRepo,
		resourceRepository: resourceRepo,
	}
}

// RegisterCommentActions registers comment-related actions
func (h *CommentHandler) RegisterCommentActions(actions ActionMap) {
	actions["getComments"] = h.GetComments
	actions["addComment"] = h.AddComment
	actions["updateComment"] = h.UpdateComment
	actions["deleteComment"] = h.DeleteComment
}

// GetComments lists a resource's comments, newest first. The resource id is
// accepted as a query param (resourceId) or in the body (resource_id).
func (h *CommentHandler) GetComments(c echo.Context) error {
	raw := c.QueryParam("resourceId")
	resourceID := uint(0)
	if raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid resourceId")
		}
		resourceID = id
	} else {
		var body struct {
			ResourceID uint `json:"resource_id"`
		}
		_ = c.Bind(&body)
		resourceID = body.ResourceID
	}
	if resourceID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "resource_id required")
	}

	views, err := h.commentRepository.ListCommentsByResource(c.Request().Context(), resourceID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

// AddComment creates a comment on an existing resource and returns it
// joined with the commenting user's name.
func (h *CommentHandler) AddComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	// Verify resource exists and is not deleted
	if _, err := h.resourceRepository.GetResourceByID(ctx, req.ResourceID); err != nil {
		return httpError(err)
	}

	comment := &models.Comment{
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		Content:    req.Content,
	}
	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return httpError(err)
	}

	view, err := h.commentRepository.GetCommentView(ctx, comment.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, view)
}

// UpdateComment overwrites the content of a comment the acting user owns.
// The stored timestamp is refreshed, so the displayed date becomes the edit
// time.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.CommentID == 0 || req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment ID and content required")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	comment, err := h.commentRepository.GetCommentByID(ctx, req.CommentID)
	if err != nil {
		return httpError(err)
	}
	if comment.UserID != req.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this comment")
	}

	if err := h.commentRepository.UpdateCommentContent(ctx, req.CommentID, req.Content); err != nil {
		return httpError(err)
	}

	view, err := h.commentRepository.GetCommentView(ctx, req.CommentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteComment soft-deletes a comment the acting user owns. Repeat deletes
// are no-ops with the same response, so a client's deferred delete can fire
// late without consequence.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	var req models.DeleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	comment, err := h.commentRepository.GetCommentByID(ctx, req.CommentID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
		}
		return httpError(err)
	}
	if comment.UserID != req.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.commentRepository.SoftDeleteComment(ctx, req.CommentID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
}
