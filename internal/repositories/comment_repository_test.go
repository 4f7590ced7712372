package repositories

import (
	"testing"
	"time"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedComment(t *testing.T, db *gorm.DB, userID, resourceID uint, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{ResourceID: resourceID, UserID: userID, Content: content}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func TestListCommentsByResource_JoinedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	course := seedCourse(t, db, "Computer Science", "CS")
	category := seedCategory(t, db, "Coding")
	alice := seedUser(t, db, "Alice", "alice@example.com", course.ID)
	resource := seedResource(t, db, alice, category.ID, "notes", true)

	first := seedComment(t, db, alice.ID, resource.ID, "first")
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)
	seedComment(t, db, alice.ID, resource.ID, "second")

	views, err := repo.ListCommentsByResource(testCtx(), resource.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "second", views[0].Text)
	assert.Equal(t, "first", views[1].Text)
	assert.Equal(t, "Alice", views[0].UserName)
}

func TestUpdateCommentContent_RefreshesTimestampWithoutDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	course := seedCourse(t, db, "Biology", "BIO")
	category := seedCategory(t, db, "Science")
	alice := seedUser(t, db, "Alice", "alice@example.com", course.ID)
	resource := seedResource(t, db, alice, category.ID, "cells", true)

	comment := seedComment(t, db, alice.ID, resource.ID, "old text")
	require.NoError(t, db.Model(comment).Update("created_at", time.Now().Add(-time.Hour)).Error)

	before, err := repo.GetCommentView(testCtx(), comment.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateCommentContent(testCtx(), comment.ID, "new text"))

	views, err := repo.ListCommentsByResource(testCtx(), resource.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "new text", views[0].Text)
	// The displayed date becomes the edit time
	assert.True(t, views[0].Date.After(before.Date))
}

func TestUpdateCommentContent_UnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	err := repo.UpdateCommentContent(testCtx(), 9999, "text")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSoftDeleteComment_HiddenAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	course := seedCourse(t, db, "Mathematics", "MATH")
	category := seedCategory(t, db, "Mathematics")
	alice := seedUser(t, db, "Alice", "alice@example.com", course.ID)
	resource := seedResource(t, db, alice, category.ID, "proofs", true)
	comment := seedComment(t, db, alice.ID, resource.ID, "nice proof")

	require.NoError(t, repo.SoftDeleteComment(testCtx(), comment.ID))
	require.NoError(t, repo.SoftDeleteComment(testCtx(), comment.ID))

	_, err := repo.GetCommentByID(testCtx(), comment.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	views, err := repo.ListCommentsByResource(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Empty(t, views)

	// The row is retained in the store, only flagged
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
