package repositories

import (
	"testing"
	"time"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisibleResources_VisibilityFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	course := seedCourse(t, db, "Computer Science", "CS")
	category := seedCategory(t, db, "Coding")
	alice := seedUser(t, db, "Alice", "alice@example.com", course.ID)
	bob := seedUser(t, db, "Bob", "bob@example.com", course.ID)

	private := seedResource(t, db, alice, category.ID, "private-notes", false)
	public := seedResource(t, db, alice, category.ID, "public-notes", true)

	titles := func(views []models.ResourceView) []string {
		out := make([]string, len(views))
		for i, v := range views {
			out[i] = v.Title
		}
		return out
	}

	// Another user sees only the public resource
	views, err := repo.ListVisibleResources(testCtx(), bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{public.Title}, titles(views))

	// The author sees both
	views, err = repo.ListVisibleResources(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{private.Title, public.Title}, titles(views))

	// Anonymous viewers see only public resources
	views, err = repo.ListVisibleResources(testCtx(), 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{public.Title}, titles(views))
}

func TestListVisibleResources_NewestFirstAndEmptyUpvotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	course := seedCourse(t, db, "Biology", "BIO")
	category := seedCategory(t, db, "Science")
	author := seedUser(t, db, "Carol", "carol@example.com", course.ID)

	older := seedResource(t, db, author, category.ID, "older", true)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := seedResource(t, db, author, category.ID, "newer", true)

	views, err := repo.ListVisibleResources(testCtx(), 0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer.Title, views[0].Title)
	assert.Equal(t, older.Title, views[1].Title)

	// No likes yet: the aggregate is an empty list, never nil
	for _, v := range views {
		assert.NotNil(t, v.Upvotes)
		assert.Empty(t, v.Upvotes)
	}
}

func TestGetResourceView_JoinsAuthorCourseCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	course := seedCourse(t, db, "Mathematics", "MATH")
	category := seedCategory(t, db, "Mathematics")
	author := seedUser(t, db, "Dave", "dave@example.com", course.ID)
	resource := seedResource(t, db, author, category.ID, "algebra", true)

	view, err := repo.GetResourceView(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dave", view.AuthorName)
	assert.Equal(t, "MATH", view.CourseCode)
	assert.Equal(t, "Mathematics", view.Category)
	assert.Equal(t, author.ID, view.AuthorID)
}

func TestGetResourceView_UnknownAuthorPlaceholder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	course := seedCourse(t, db, "Business", "BUS")
	category := seedCategory(t, db, "General")
	author := seedUser(t, db, "Eve", "eve@example.com", course.ID)
	resource := seedResource(t, db, author, category.ID, "slides", true)

	// Author removed: the view degrades to a placeholder, not an error
	require.NoError(t, db.Delete(&models.User{}, author.ID).Error)

	view, err := repo.GetResourceView(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", view.AuthorName)
	assert.Equal(t, "", view.CourseCode)
}

func TestSoftDeletedResourceInvisibleEverywhere(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	course := seedCourse(t, db, "Literature", "LIT")
	category := seedCategory(t, db, "Literature")
	author := seedUser(t, db, "Frank", "frank@example.com", course.ID)
	resource := seedResource(t, db, author, category.ID, "poems", true)

	require.NoError(t, repo.SoftDeleteResource(testCtx(), resource.ID))
	// Repeat delete is a no-op
	require.NoError(t, repo.SoftDeleteResource(testCtx(), resource.ID))

	_, err := repo.GetResourceByID(testCtx(), resource.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = repo.GetResourceView(testCtx(), resource.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	views, err := repo.ListVisibleResources(testCtx(), author.ID)
	require.NoError(t, err)
	assert.Empty(t, views)

	summaries, err := repo.ListResourcesByAuthor(testCtx(), author.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestUpdateResource_PartialAndEmptyPatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	course := seedCourse(t, db, "Computer Science", "CS")
	category := seedCategory(t, db, "Coding")
	author := seedUser(t, db, "Grace", "grace@example.com", course.ID)
	resource := seedResource(t, db, author, category.ID, "go-tips", false)

	newTitle := "go-tricks"
	isPublic := true
	err := repo.UpdateResource(testCtx(), resource.ID, models.ResourcePatch{Title: &newTitle, IsPublic: &isPublic})
	require.NoError(t, err)

	updated, err := repo.GetResourceByID(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Equal(t, "go-tricks", updated.Title)
	assert.True(t, updated.IsPublic)
	// Untouched fields survive a partial update
	assert.Equal(t, resource.URL, updated.URL)

	// An empty patch is rejected and changes nothing
	err = repo.UpdateResource(testCtx(), resource.ID, models.ResourcePatch{})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	unchanged, err := repo.GetResourceByID(testCtx(), resource.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *unchanged)
}

func TestUpdateResource_UnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResourceRepository(db)

	title := "ghost"
	err := repo.UpdateResource(testCtx(), 9999, models.ResourcePatch{Title: &title})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
