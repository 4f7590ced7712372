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

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userRepository   repositories.UserRepository
	courseRepository repositories.CourseRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, courseRepo repositories.CourseRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		courseRepository: courseRepo,
	}
}

// RegisterUserActions registers user profile actions
func (h *UserHandler) RegisterUserActions(actions ActionMap) {
	actions["users"] = h.Users
	actions["updateUser"] = h.UpdateUser
}

// Users dispatches on HTTP method: GET fetches a profile, POST creates a
// user directly (seeding/admin path, unlike self-service register).
func (h *UserHandler) Users(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodGet:
		return h.GetUser(c)
	case http.MethodPost:
		return h.AddUser(c)
	default:
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// GetUser retrieves a user's profile joined with their course
func (h *UserHandler) GetUser(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User id required")
	}
	id, err := parseID(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}

	profile, err := h.userRepository.GetProfile(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddUser creates a user from a course id directly
func (h *UserHandler) AddUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		CourseID:     req.CourseID,
	}
	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created"})
}

// UpdateUser applies a partial profile update: name, major (resolved to a
// course by name or code; an unresolvable major is skipped) and password.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID required")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	patch := models.UserPatch{Name: req.Name}
	if req.Major != nil && *req.Major != "" {
		course, err := h.courseRepository.GetCourseByNameOrCode(ctx, *req.Major)
		if err == nil {
			patch.CourseID = &course.ID
		} else if !apperr.IsKind(err, apperr.KindNotFound) {
			return httpError(err)
		}
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
		}
		hash := string(hashedPassword)
		patch.PasswordHash = &hash
	}

	if err := h.userRepository.UpdateUser(ctx, req.ID, patch); err != nil {
		return httpError(err)
	}

	profile, err := h.userRepository.GetProfile(ctx, req.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
