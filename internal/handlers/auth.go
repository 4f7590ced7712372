package handlers

import (
	"net/http"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/paperpup/studyshare/backend/internal/models"
	"github.com/paperpup/studyshare/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository   repositories.UserRepository
	courseRepository repositories.CourseRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, courseRepo repositories.CourseRepository) *AuthHandler {
	return &AuthHandler{
		userRepository:   userRepo,
		courseRepository: courseRepo,
	}
}

// RegisterAuthActions registers authentication-related actions
func (h *AuthHandler) RegisterAuthActions(actions ActionMap) {
	actions["login"] = h.Login
	actions["register"] = h.Register
}

// Login authenticates a user by email and password and returns the user
// with their course code. Identity checks stop here; subsequent requests
// carry the user id directly.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password required")
	}

	ctx := c.Request().Context()

	user, err := h.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return httpError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	profile, err := h.userRepository.GetProfile(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": models.AuthUser{
		ID:         profile.ID,
		Name:       profile.Name,
		Email:      profile.Email,
		CourseCode: profile.CourseCode,
	}})
}

// Register creates a user under the course identified by course_code. The
// course is resolved before any user row is written, so an unknown code
// cannot leave an orphaned user behind.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	ctx := c.Request().Context()

	course, err := h.courseRepository.GetCourseByCode(ctx, req.CourseCode)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Course not found")
		}
		return httpError(err)
	}

	if _, err := h.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		CourseID:     course.ID,
	}

	if err := h.userRepository.CreateUser(ctx, user); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"user": models.AuthUser{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		CourseCode: course.Code,
	}})
}
