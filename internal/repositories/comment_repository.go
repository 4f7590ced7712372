package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id uint) (*models.Comment, error)
	GetCommentView(ctx context.Context, id uint) (*models.CommentView, error)
	ListCommentsByResource(ctx context.Context, resourceID uint) ([]models.CommentView, error)
	UpdateCommentContent(ctx context.Context, id uint, content string) error
	SoftDeleteComment(ctx context.Context, id uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// commentRow is the scan target for the joined comment view query.
type commentRow struct {
	ID         uint
	ResourceID uint
	UserID     uint
	UserName   string
	Text       string
	Date       time.Time
}

func formatUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (row commentRow) toView() models.CommentView {
	return models.CommentView{
		ID:         row.ID,
		ResourceID: row.ResourceID,
		UserID:     formatUserID(row.UserID),
		UserName:   row.UserName,
		Text:       row.Text,
		Date:       row.Date,
	}
}

func (r *PostgresCommentRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("comments c").
		Select(`c.id, c.resource_id, c.user_id, COALESCE(u.name, 'Unknown') AS user_name,
			c.content AS text, c.created_at AS date`).
		Joins("LEFT JOIN users u ON u.id = c.user_id AND u.deleted_at IS NULL").
		Where("c.deleted_at IS NULL")
}

// CreateComment creates a new comment row
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// GetCommentByID retrieves a non-deleted comment by ID
func (r *PostgresCommentRepository) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Comment not found")
		}
		return nil, apperr.Internal(err)
	}
	return &comment, nil
}

// GetCommentView retrieves a single comment joined with the commenting
// user's display name.
func (r *PostgresCommentRepository) GetCommentView(ctx context.Context, id uint) (*models.CommentView, error) {
	var row commentRow
	if err := r.viewQuery(ctx).Where("c.id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Comment not found")
		}
		return nil, apperr.Internal(err)
	}
	view := row.toView()
	return &view, nil
}

// ListCommentsByResource retrieves all non-deleted comments on a resource,
// newest first, each joined with the commenting user's display name.
func (r *PostgresCommentRepository) ListCommentsByResource(ctx context.Context, resourceID uint) ([]models.CommentView, error) {
	var rows []commentRow
	err := r.viewQuery(ctx).
		Where("c.resource_id = ?", resourceID).
		Order("c.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	views := make([]models.CommentView, len(rows))
	for i, row := range rows {
		views[i] = row.toView()
	}
	return views, nil
}

// UpdateCommentContent overwrites the comment's content and its created_at
// timestamp, so the displayed date becomes the edit time.
func (r *PostgresCommentRepository) UpdateCommentContent(ctx context.Context, id uint, content string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"content": content, "created_at": time.Now()})
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Comment not found")
	}
	return nil
}

// SoftDeleteComment marks a comment deleted; idempotent
func (r *PostgresCommentRepository) SoftDeleteComment(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}
