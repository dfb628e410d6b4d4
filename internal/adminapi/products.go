package adminapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/catalog"
	"github.com/printarts/printrec/internal/domain"
	"github.com/printarts/printrec/internal/webserver"
)

type productPayload struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Category        string `json:"category" validate:"required,min=1,max=100"`
	Material        string `json:"material" validate:"omitempty,max=200"`
	ScreenPrinting  string `json:"screen_printing"`
	UvPrinting      string `json:"uv_printing"`
	OffsetPrinting  string `json:"offset_printing"`
	DigitalPrinting string `json:"digital_printing"`
	LaserEngraving  string `json:"laser_engraving"`
	DtgDtf          string `json:"dtg_dtf"`
	Embroidery      string `json:"embroidery"`
	Sublimation     string `json:"sublimation"`
	ProductionTime  string `json:"production_time"`
}

func (p productPayload) apply(dst *domain.Product) {
	dst.Name = strings.TrimSpace(p.Name)
	dst.Category = strings.TrimSpace(p.Category)
	dst.Material = strings.TrimSpace(p.Material)
	dst.ScreenPrinting = p.ScreenPrinting
	dst.UvPrinting = p.UvPrinting
	dst.OffsetPrinting = p.OffsetPrinting
	dst.DigitalPrinting = p.DigitalPrinting
	dst.LaserEngraving = p.LaserEngraving
	dst.DtgDtf = p.DtgDtf
	dst.Embroidery = p.Embroidery
	dst.Sublimation = p.Sublimation
	dst.ProductionTime = p.ProductionTime
}

func productRepo() catalog.ProductRepository {
	return catalog.NewGormProductRepository(app.GApp().DB())
}

// registerProductRoutes registers catalog CRUD endpoints. Reads are public,
// mutations require authentication.
func registerProductRoutes() {
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/categories", listCategories)
	webserver.PubGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	filter := catalog.ListFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	rows, err := productRepo().List(c.Request().Context(), filter)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}

func listCategories(c echo.Context) error {
	categories, err := productRepo().Categories(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, categories)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := productRepo().GetByID(c.Request().Context(), id)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	var p domain.Product
	payload.apply(&p)
	if err := productRepo().Create(c.Request().Context(), &p); err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventProductCreated, operName(c), fmt.Sprintf("product %d (%s)", p.ID, p.Name))
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	repo := productRepo()
	p := domain.Product{ID: id}
	payload.apply(&p)
	if err := repo.Update(c.Request().Context(), &p); err != nil {
		return failFromErr(c, err)
	}

	// Return the stored row so the response observes the same write,
	// including the untouched image slots.
	stored, err := repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventProductUpdated, operName(c), fmt.Sprintf("product %d (%s)", stored.ID, stored.Name))
	return ok(c, stored)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := productRepo().Delete(c.Request().Context(), id); err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventProductDeleted, operName(c), fmt.Sprintf("product %d", id))
	return ok(c, map[string]interface{}{"message": "Product deleted successfully"})
}
