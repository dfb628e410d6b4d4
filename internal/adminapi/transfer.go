package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/catalog"
	"github.com/printarts/printrec/internal/domain"
	"github.com/printarts/printrec/internal/webserver"
	"go.uber.org/zap"
)

// productExport is the CSV row shape for catalog export.
type productExport struct {
	ID              int64  `csv:"id"`
	Name            string `csv:"name"`
	Category        string `csv:"category"`
	Material        string `csv:"material"`
	ScreenPrinting  string `csv:"screen_printing"`
	UvPrinting      string `csv:"uv_printing"`
	OffsetPrinting  string `csv:"offset_printing"`
	DigitalPrinting string `csv:"digital_printing"`
	LaserEngraving  string `csv:"laser_engraving"`
	DtgDtf          string `csv:"dtg_dtf"`
	Embroidery      string `csv:"embroidery"`
	Sublimation     string `csv:"sublimation"`
	ProductionTime  string `csv:"production_time"`
}

func registerTransferRoutes() {
	webserver.ApiPOST("/products/import", importProducts)
	webserver.ApiGET("/products/export", exportProducts)
}

// importProducts loads products from an uploaded xlsx workbook. Columns are
// positional: name, category, material, the eight method capability columns
// in registry order, production time. The first row is treated as a header.
func importProducts(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "File is required", err.Error())
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to open upload", err.Error())
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			zap.L().Debug("failed to close upload", zap.Error(cerr))
		}
	}()

	book, err := excelize.OpenReader(f)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Not a valid xlsx workbook", err.Error())
	}

	rows := book.GetRows("Sheet1")
	if len(rows) == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Workbook has no rows", nil)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	repo := productRepo()
	var imported, skipped int
	for i, row := range rows {
		if i == 0 {
			continue
		}
		p := domain.Product{
			Name:            cell(row, 0),
			Category:        cell(row, 1),
			Material:        cell(row, 2),
			ScreenPrinting:  cell(row, 3),
			UvPrinting:      cell(row, 4),
			OffsetPrinting:  cell(row, 5),
			DigitalPrinting: cell(row, 6),
			LaserEngraving:  cell(row, 7),
			DtgDtf:          cell(row, 8),
			Embroidery:      cell(row, 9),
			Sublimation:     cell(row, 10),
			ProductionTime:  cell(row, 11),
		}
		if p.Name == "" || p.Category == "" {
			skipped++
			continue
		}
		if err := repo.Create(c.Request().Context(), &p); err != nil {
			zap.L().Warn("failed to import product row",
				zap.Int("row", i+1), zap.String("name", p.Name), zap.Error(err))
			skipped++
			continue
		}
		imported++
	}

	app.GApp().PublishEvent(app.EventProductCreated, operName(c),
		fmt.Sprintf("imported %d products from %s", imported, fh.Filename))
	return ok(c, map[string]interface{}{
		"imported": imported,
		"skipped":  skipped,
	})
}

// exportProducts streams the full catalog as CSV.
func exportProducts(c echo.Context) error {
	rows, err := productRepo().List(c.Request().Context(), catalog.ListFilter{})
	if err != nil {
		return failFromErr(c, err)
	}

	records := make([]productExport, 0, len(rows))
	for _, p := range rows {
		records = append(records, productExport{
			ID:              p.ID,
			Name:            p.Name,
			Category:        p.Category,
			Material:        p.Material,
			ScreenPrinting:  p.ScreenPrinting,
			UvPrinting:      p.UvPrinting,
			OffsetPrinting:  p.OffsetPrinting,
			DigitalPrinting: p.DigitalPrinting,
			LaserEngraving:  p.LaserEngraving,
			DtgDtf:          p.DtgDtf,
			Embroidery:      p.Embroidery,
			Sublimation:     p.Sublimation,
			ProductionTime:  p.ProductionTime,
		})
	}

	out, err := gocsv.MarshalString(&records)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to encode CSV", err.Error())
	}

	filename := fmt.Sprintf("products-%s.csv", time.Now().Format("20060102-150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
