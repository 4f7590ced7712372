package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"gorm.io/gorm"
)

// ResourceRepository defines the interface for resource data operations,
// including the denormalized views consumed by the client.
type ResourceRepository interface {
	CreateResource(ctx context.Context, resource *models.Resource) error
	GetResourceByID(ctx context.Context, id uint) (*models.Resource, error)
	GetResourceView(ctx context.Context, id uint) (*models.ResourceView, error)
	ListVisibleResources(ctx context.Context, viewerID uint) ([]models.ResourceView, error)
	ListResourcesByAuthor(ctx context.Context, authorID uint) ([]models.ResourceSummary, error)
	UpdateResource(ctx context.Context, id uint, patch models.ResourcePatch) error
	SoftDeleteResource(ctx context.Context, id uint) error
}

// PostgresResourceRepository implements ResourceRepository for PostgreSQL
type PostgresResourceRepository struct {
	db *gorm.DB
}

// NewPostgresResourceRepository creates a new PostgresResourceRepository
func NewPostgresResourceRepository(db *gorm.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

// CreateResource creates a new resource row
func (r *PostgresResourceRepository) CreateResource(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// GetResourceByID retrieves a non-deleted resource by ID. Visibility is not
// checked here; a single-resource fetch is trusted.
func (r *PostgresResourceRepository) GetResourceByID(ctx context.Context, id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Resource not found")
		}
		return nil, apperr.Internal(err)
	}
	return &resource, nil
}

// UpdateResource applies only the fields present in the patch and stamps
// updated_at. An empty patch is rejected, leaving the row unchanged.
func (r *PostgresResourceRepository) UpdateResource(ctx context.Context, id uint, patch models.ResourcePatch) error {
	changes := patch.Changes()
	if len(changes) == 0 {
		return apperr.Validation("Nothing to update")
	}
	res := r.db.WithContext(ctx).Model(&models.Resource{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Resource not found")
	}
	return nil
}

// SoftDeleteResource marks a resource deleted; idempotent
func (r *PostgresResourceRepository) SoftDeleteResource(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Resource{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// viewQuery builds the join across author, course and category for the
// denormalized resource view. Author and category are LEFT JOINed so a
// removed author degrades to the "Unknown" placeholder instead of dropping
// the row.
func (r *PostgresResourceRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("resources r").
		Select(`r.id, r.title, r.description, r.url, r.is_public, r.created_at AS date_added,
			r.category_id, COALESCE(c.name, '') AS category,
			r.author_id, COALESCE(u.name, 'Unknown') AS author_name,
			COALESCE(co.code, '') AS course_code`).
		Joins("LEFT JOIN users u ON u.id = r.author_id AND u.deleted_at IS NULL").
		Joins("LEFT JOIN courses co ON co.id = u.course_id").
		Joins("LEFT JOIN categories c ON c.id = r.category_id").
		Where("r.deleted_at IS NULL")
}

// GetResourceView retrieves the denormalized view of a single resource.
func (r *PostgresResourceRepository) GetResourceView(ctx context.Context, id uint) (*models.ResourceView, error) {
	var view models.ResourceView
	err := r.viewQuery(ctx).Where("r.id = ?", id).Take(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Resource not found")
		}
		return nil, apperr.Internal(err)
	}
	if err := r.attachUpvotes(ctx, []*models.ResourceView{&view}); err != nil {
		return nil, err
	}
	return &view, nil
}

// ListVisibleResources retrieves the views of all resources the viewer may
// see: public ones, plus the viewer's own when viewerID is non-zero. Newest
// first.
func (r *PostgresResourceRepository) ListVisibleResources(ctx context.Context, viewerID uint) ([]models.ResourceView, error) {
	q := r.viewQuery(ctx)
	if viewerID != 0 {
		q = q.Where("r.is_public = ? OR r.author_id = ?", true, viewerID)
	} else {
		q = q.Where("r.is_public = ?", true)
	}

	var views []models.ResourceView
	if err := q.Order("r.created_at DESC").Find(&views).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	refs := make([]*models.ResourceView, len(views))
	for i := range views {
		refs[i] = &views[i]
	}
	if err := r.attachUpvotes(ctx, refs); err != nil {
		return nil, err
	}
	return views, nil
}

// ListResourcesByAuthor retrieves the author's own resource summaries,
// newest first.
func (r *PostgresResourceRepository) ListResourcesByAuthor(ctx context.Context, authorID uint) ([]models.ResourceSummary, error) {
	var summaries []models.ResourceSummary
	err := r.db.WithContext(ctx).
		Table("resources r").
		Select("r.id, r.title, r.description, r.url, COALESCE(c.name, '') AS category").
		Joins("LEFT JOIN categories c ON c.id = r.category_id").
		Where("r.author_id = ? AND r.deleted_at IS NULL", authorID).
		Order("r.created_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return summaries, nil
}

// attachUpvotes fills in the distinct liker ids for each view with a single
// query over the likes table, bucketed by resource. Views with no likes get
// an empty slice, never nil.
func (r *PostgresResourceRepository) attachUpvotes(ctx context.Context, views []*models.ResourceView) error {
	ids := make([]uint, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	upvotes := map[uint][]string{}
	if len(ids) > 0 {
		var likes []models.Like
		err := r.db.WithContext(ctx).
			Where("resource_id IN ?", ids).
			Order("id ASC").
			Find(&likes).Error
		if err != nil {
			return apperr.Internal(err)
		}
		for _, like := range likes {
			upvotes[like.ResourceID] = append(upvotes[like.ResourceID], strconv.FormatUint(uint64(like.UserID), 10))
		}
	}

	for _, v := range views {
		if list, ok := upvotes[v.ID]; ok {
			v.Upvotes = list
		} else {
			v.Upvotes = []string{}
		}
	}
	return nil
}
