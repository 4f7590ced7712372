package repositories

import (
	"context"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category lookups
type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
}

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *gorm.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// GetCategories retrieves all categories ordered by id
func (r *PostgresCategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}
