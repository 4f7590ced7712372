package handlers

import (
	"errors"
	"strconv"

	"github.com/paperpup/studyshare/backend/internal/apperr"
	"github.com/labstack/echo/v4"
)

// ActionMap maps client action names to their handlers. Each handler
// registers its actions into the shared map at wiring time.
type ActionMap map[string]echo.HandlerFunc

// httpError converts an application error into the echo error the central
// error handler renders as {"error": message}.
func httpError(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(apperr.StatusOf(err), appErr.Message)
	}
	return echo.NewHTTPError(apperr.StatusOf(err), err.Error())
}

// parseID parses a numeric id from a query or body string.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
