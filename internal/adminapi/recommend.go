package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printarts/printrec/internal/recommend"
	"github.com/printarts/printrec/internal/webserver"
)

// registerRecommendRoutes registers the compiled recommendation endpoint.
func registerRecommendRoutes() {
	webserver.PubGET("/recommend/:id", getRecommendation)
}

func getRecommendation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := productRepo().GetByID(c.Request().Context(), id)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, recommend.Compile(p))
}
