package adminapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/catalog"
	"github.com/printarts/printrec/internal/storage"
	"github.com/printarts/printrec/internal/webserver"
	"go.uber.org/zap"
)

func imageService() (*catalog.ImageService, error) {
	cfg := app.GApp().Config()
	store, err := storage.NewDiskStore(cfg.GetUploadDir(), cfg.Storage.MaxUploadSize, cfg.Storage.AllowedTypes)
	if err != nil {
		return nil, err
	}
	return catalog.NewImageService(productRepo(), store), nil
}

// registerImageRoutes registers the image slot endpoints: the product's own
// image plus one image per method key.
func registerImageRoutes() {
	webserver.ApiPOST("/products/:id/upload-image", uploadProductImage)
	webserver.ApiDELETE("/products/:id/image", deleteProductImage)
	webserver.ApiPOST("/products/:id/method-image/:method_key", uploadMethodImage)
	webserver.ApiDELETE("/products/:id/method-image/:method_key", deleteMethodImage)
}

func readUpload(c echo.Context) ([]byte, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			zap.L().Debug("failed to close upload", zap.Error(cerr))
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}

func uploadProductImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	data, contentType, err := readUpload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "File is required", err.Error())
	}

	svc, err := imageService()
	if err != nil {
		return failFromErr(c, err)
	}
	filename, err := svc.Upload(c.Request().Context(), id, catalog.ProductImageSlot, data, contentType)
	if err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventImageChanged, operName(c), "product "+c.Param("id")+" image uploaded")
	return ok(c, map[string]interface{}{
		"image":     filename,
		"image_url": "/uploads/" + filename,
	})
}

func deleteProductImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	svc, err := imageService()
	if err != nil {
		return failFromErr(c, err)
	}
	if err := svc.Remove(c.Request().Context(), id, catalog.ProductImageSlot); err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventImageChanged, operName(c), "product "+c.Param("id")+" image removed")
	return ok(c, map[string]interface{}{"message": "Image removed"})
}

func uploadMethodImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	slot, err := catalog.ResolveMethodSlot(c.Param("method_key"))
	if err != nil {
		return failFromErr(c, err)
	}

	data, contentType, err := readUpload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "File is required", err.Error())
	}

	svc, err := imageService()
	if err != nil {
		return failFromErr(c, err)
	}
	filename, err := svc.Upload(c.Request().Context(), id, slot, data, contentType)
	if err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventImageChanged, operName(c),
		"product "+c.Param("id")+" method "+slot.Key+" image uploaded")
	return ok(c, map[string]interface{}{
		"image":     filename,
		"image_url": "/uploads/" + filename,
		"method":    slot.Key,
	})
}

func deleteMethodImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	slot, err := catalog.ResolveMethodSlot(c.Param("method_key"))
	if err != nil {
		return failFromErr(c, err)
	}

	svc, err := imageService()
	if err != nil {
		return failFromErr(c, err)
	}
	if err := svc.Remove(c.Request().Context(), id, slot); err != nil {
		return failFromErr(c, err)
	}

	app.GApp().PublishEvent(app.EventImageChanged, operName(c),
		"product "+c.Param("id")+" method "+slot.Key+" image removed")
	return ok(c, map[string]interface{}{"message": "Method image removed"})
}
