package repositories

import (
	"context"
	"errors"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"gorm.io/gorm"
)

// CourseRepository defines the interface for course directory lookups
type CourseRepository interface {
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	GetCourseByNameOrCode(ctx context.Context, q string) (*models.Course, error)
	GetCourses(ctx context.Context) ([]models.Course, error)
}

// PostgresCourseRepository implements CourseRepository for PostgreSQL
type PostgresCourseRepository struct {
	db *gorm.DB
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository
func NewPostgresCourseRepository(db *gorm.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

// GetCourseByCode retrieves a course by its short code
func (r *PostgresCourseRepository) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course not found")
		}
		return nil, apperr.Internal(err)
	}
	return &course, nil
}

// GetCourseByNameOrCode retrieves a course matching either its human name or
// its short code. Used when a profile update supplies a "major".
func (r *PostgresCourseRepository) GetCourseByNameOrCode(ctx context.Context, q string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("name = ? OR code = ?", q, q).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course not found")
		}
		return nil, apperr.Internal(err)
	}
	return &course, nil
}

// GetCourses retrieves all courses ordered by id
func (r *PostgresCourseRepository) GetCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return courses, nil
}
