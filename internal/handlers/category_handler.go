package handlers

import (
	"net/http"

	"github.com/paperpup/studyshare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles HTTP requests related to categories
type CategoryHandler struct {
	categoryRepository repositories.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepository: categoryRepo}
}

// RegisterCategoryActions registers category-related actions
func (h *CategoryHandler) RegisterCategoryActions(actions ActionMap) {
	actions["getCategories"] = h.GetCategories
}

// GetCategories retrieves the fixed category set ordered by id
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryRepository.GetCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}
