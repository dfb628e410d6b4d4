package adminapi

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/catalog"
	"gorm.io/gorm"
)

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func GetDB(c echo.Context) *gorm.DB {
	return app.GApp().DB()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, errorResponse{Code: code, Message: message, Details: details})
}

// failFromErr maps service errors onto the transport error taxonomy.
func failFromErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case errors.Is(err, catalog.ErrInvalidInput):
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Operation failed", err.Error())
	}
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// operName extracts the authenticated operator name for the audit trail.
func operName(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "anonymous"
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "anonymous"
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	return "anonymous"
}
