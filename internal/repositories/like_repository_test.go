package repositories

import (
	"testing"

	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_Involution(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	course := seedCourse(t, db, "Computer Science", "CS")
	category := seedCategory(t, db, "Coding")
	user := seedUser(t, db, "Alice", "alice@example.com", course.ID)
	resource := seedResource(t, db, user, category.ID, "notes", true)

	// First toggle likes
	liked, err := repo.ToggleLike(testCtx(), user.ID, resource.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	ids, err := repo.GetLikerIDsByResourceID(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{user.ID}, ids)

	// Second toggle returns to the original state
	liked, err = repo.ToggleLike(testCtx(), user.ID, resource.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	ids, err = repo.GetLikerIDsByResourceID(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
}

func TestToggleLike_TwoUsersConverge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	course := seedCourse(t, db, "Biology", "BIO")
	category := seedCategory(t, db, "Science")
	alice := seedUser(t, db, "Alice", "alice@example.com", course.ID)
	bob := seedUser(t, db, "Bob", "bob@example.com", course.ID)
	resource := seedResource(t, db, alice, category.ID, "cells", true)

	_, err := repo.ToggleLike(testCtx(), alice.ID, resource.ID)
	require.NoError(t, err)
	_, err = repo.ToggleLike(testCtx(), bob.ID, resource.ID)
	require.NoError(t, err)

	ids, err := repo.GetLikerIDsByResourceID(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{alice.ID, bob.ID}, ids)
}

func TestLikeUniquenessConstraint(t *testing.T) {
	db := newTestDB(t)

	course := seedCourse(t, db, "Mathematics", "MATH")
	category := seedCategory(t, db, "Mathematics")
	user := seedUser(t, db, "Carol", "carol@example.com", course.ID)
	resource := seedResource(t, db, user, category.ID, "proofs", true)

	require.NoError(t, db.Create(&models.Like{UserID: user.ID, ResourceID: resource.ID}).Error)

	// A second identical row violates the composite unique index
	err := db.Create(&models.Like{UserID: user.ID, ResourceID: resource.ID}).Error
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHasUserLikedResource(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	course := seedCourse(t, db, "Business", "BUS")
	category := seedCategory(t, db, "General")
	user := seedUser(t, db, "Dave", "dave@example.com", course.ID)
	resource := seedResource(t, db, user, category.ID, "pitch", true)

	liked, err := repo.HasUserLikedResource(testCtx(), user.ID, resource.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = repo.ToggleLike(testCtx(), user.ID, resource.ID)
	require.NoError(t, err)

	liked, err = repo.HasUserLikedResource(testCtx(), user.ID, resource.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}
