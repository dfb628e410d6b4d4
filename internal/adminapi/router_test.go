package adminapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/printarts/printrec/config"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/domain"
	"github.com/printarts/printrec/internal/webserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var setupOnce sync.Once

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	setupOnce.Do(func() {
		workdir, err := os.MkdirTemp("", "printrec-test")
		require.NoError(t, err)

		cfg := new(config.AppConfig)
		*cfg = *config.DefaultAppConfig
		cfg.System.Workdir = workdir
		cfg.Database.Type = "sqlite"
		cfg.Logger.FileEnable = false
		cfg.Web.Secret = "unit-test-secret"

		app.Initialize(cfg)
		webserver.Init(cfg)
		InitRouter()
	})
	return webserver.Echo()
}

func doJSON(e *echo.Echo, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = jsoniter.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &out))
	token, _ := out["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginRejectsBadPassword(t *testing.T) {
	e := setupServer(t)
	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMutationRequiresToken(t *testing.T) {
	e := setupServer(t)
	rec := doJSON(e, http.MethodPost, "/api/products", "", map[string]string{
		"name":     "Unauthorized Pen",
		"category": "Pens",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductLifecycle(t *testing.T) {
	e := setupServer(t)
	token := loginToken(t, e)

	rec := doJSON(e, http.MethodPost, "/api/products", token, map[string]string{
		"name":            "Metal Pen",
		"category":        "Pens",
		"material":        "Aluminium",
		"screen_printing": "1",
		"uv_printing":     "Multi",
		"embroidery":      "NA",
		"production_time": "Screen Printing: 3-4 working days\nUV Printing: 2 working days",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created domain.Product
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = doJSON(e, http.MethodGet, "/api/products?search=metal", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []domain.Product
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &listed))
	assert.NotEmpty(t, listed)

	rec = doJSON(e, http.MethodGet, "/api/recommend/"+idString(created.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var compiled struct {
		Methods []struct {
			Method         string  `json:"method"`
			MethodKey      string  `json:"method_key"`
			Available      bool    `json:"available"`
			ColorLimit     *string `json:"color_limit"`
			ProductionTime string  `json:"production_time"`
		} `json:"methods"`
	}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &compiled))
	require.Len(t, compiled.Methods, 8)
	assert.Equal(t, "screen_printing", compiled.Methods[0].MethodKey)
	assert.True(t, compiled.Methods[0].Available)
	require.NotNil(t, compiled.Methods[0].ColorLimit)
	assert.Equal(t, "1 color(s)", *compiled.Methods[0].ColorLimit)
	assert.Equal(t, "Screen Printing: 3-4 working days", compiled.Methods[0].ProductionTime)

	for _, m := range compiled.Methods {
		if m.MethodKey == "embroidery" {
			assert.False(t, m.Available)
			assert.Empty(t, m.ProductionTime)
		}
	}

	rec = doJSON(e, http.MethodDelete, "/api/products/"+idString(created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/products/"+idString(created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommendUnknownProduct(t *testing.T) {
	e := setupServer(t)
	rec := doJSON(e, http.MethodGet, "/api/recommend/999999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
