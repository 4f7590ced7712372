package repositories

import (
	"context"
	"testing"

	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// A single connection keeps the in-memory store from vanishing between
// pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Category{},
		&models.User{},
		&models.Resource{},
		&models.Like{},
		&models.Comment{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, name, code string) *models.Course {
	t.Helper()
	course := &models.Course{Name: name, Code: code}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, courseID uint) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, PasswordHash: "x", CourseID: courseID}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedResource(t *testing.T, db *gorm.DB, author *models.User, categoryID uint, title string, isPublic bool) *models.Resource {
	t.Helper()
	resource := &models.Resource{
		Title:      title,
		URL:        "https://example.com/" + title,
		CategoryID: categoryID,
		CourseID:   author.CourseID,
		AuthorID:   author.ID,
		IsPublic:   isPublic,
	}
	require.NoError(t, db.Create(resource).Error)
	return resource
}

func testCtx() context.Context {
	return context.Background()
}
