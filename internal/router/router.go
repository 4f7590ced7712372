package router

import (
	"log"
	"net/http"
	"time"

	"github.com/paperpup/studyshare/backend/internal/handlers"
	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/paperpup/studyshare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware. Every request carries a
// bounded deadline; a request that outlives it fails with 503 instead of
// hanging on store I/O.
func SetupMiddleware(e *echo.Echo, requestTimeout time.Duration) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.ContextTimeout(requestTimeout))
	e.HTTPErrorHandler = errorHandler
	log.Println("Global middleware configured.")
}

// errorHandler renders every error as the {"error": message} body the
// client contract expects.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if err := c.JSON(status, map[string]string{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}

// SetupRoutes migrates the schema, seeds the read-mostly directories and
// wires the action dispatcher with its dependencies.
func SetupRoutes(e *echo.Echo, db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Course{},
		&models.Category{},
		&models.User{},
		&models.Resource{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}
	log.Println("Auto-migrations completed for all models.")

	if err := SeedDirectory(db); err != nil {
		return err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "studyshare API"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	courseRepo := repositories.NewPostgresCourseRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	resourceRepo := repositories.NewPostgresResourceRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	// --- Register actions ---
	actions := handlers.ActionMap{}

	authHandler := handlers.NewAuthHandler(userRepo, courseRepo)
	authHandler.RegisterAuthActions(actions)

	userHandler := handlers.NewUserHandler(userRepo, courseRepo)
	userHandler.RegisterUserActions(actions)

	resourceHandler := handlers.NewResourceHandler(resourceRepo, userRepo)
	resourceHandler.RegisterResourceActions(actions)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	categoryHandler.RegisterCategoryActions(actions)

	likeHandler := handlers.NewLikeHandler(likeRepo, resourceRepo)
	likeHandler.RegisterLikeActions(actions)

	commentHandler := handlers.NewCommentHandler(commentRepo, resourceRepo)
	commentHandler.RegisterCommentActions(actions)

	e.Any("/api", Dispatch(actions))
	log.Printf("Action dispatcher configured with %d actions.", len(actions))

	return nil
}

// Dispatch selects the handler named by the action query parameter. The
// single-endpoint shape keeps the server a drop-in replacement for the
// existing client.
func Dispatch(actions handlers.ActionMap) echo.HandlerFunc {
	return func(c echo.Context) error {
		action := c.QueryParam("action")
		if action == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "No action specified")
		}
		h, ok := actions[action]
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "Unknown action")
		}
		return h(c)
	}
}

// SeedDirectory fills the read-mostly course and category directories when
// they are empty. Categories mirror the fixed set the client renders.
func SeedDirectory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		categories := []models.Category{
			{Name: "General"},
			{Name: "Mathematics"},
			{Name: "Science"},
			{Name: "History"},
			{Name: "Literature"},
			{Name: "Coding"},
			{Name: "Art"},
			{Name: "Other"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		log.Println("Seeded default categories.")
	}

	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		courses := []models.Course{
			{Name: "Computer Science", Code: "CS"},
			{Name: "Mathematics", Code: "MATH"},
			{Name: "Biology", Code: "BIO"},
			{Name: "Business Administration", Code: "BUS"},
			{Name: "English Literature", Code: "LIT"},
		}
		if err := db.Create(&courses).Error; err != nil {
			return err
		}
		log.Println("Seeded default courses.")
	}

	return nil
}
