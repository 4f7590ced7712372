package repositories

import (
	"context"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for upvote data operations
type LikeRepository interface {
	ToggleLike(ctx context.Context, userID, resourceID uint) (bool, error)
	GetLikerIDsByResourceID(ctx context.Context, resourceID uint) ([]uint, error)
	HasUserLikedResource(ctx context.Context, userID, resourceID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike removes the (user, resource) like row if present, otherwise
// inserts it. Runs in a single transaction; the insert rides on the
// composite unique index with ON CONFLICT DO NOTHING, so two concurrent
// toggles by the same user cannot produce duplicate rows. Returns whether
// the resource is liked after the toggle.
func (r *PostgresLikeRepository) ToggleLike(ctx context.Context, userID, resourceID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND resource_id = ?", userID, resourceID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		like := &models.Like{UserID: userID, ResourceID: resourceID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, apperr.Internal(err)
	}
	return liked, nil
}

// GetLikerIDsByResourceID retrieves the distinct ids of users who liked a
// resource, in insertion order. Never returns nil.
func (r *PostgresLikeRepository) GetLikerIDsByResourceID(ctx context.Context, resourceID uint) ([]uint, error) {
	userIDs := make([]uint, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("resource_id = ?", resourceID).
		Order("id ASC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return userIDs, nil
}

// HasUserLikedResource checks if a user has liked a specific resource
func (r *PostgresLikeRepository) HasUserLikedResource(ctx context.Context, userID, resourceID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}
