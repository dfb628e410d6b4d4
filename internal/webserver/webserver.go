package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/printarts/printrec/config"
	"github.com/printarts/printrec/pkg/metrics"
	"go.uber.org/zap"
)

// WebServer wraps the echo instance with a public group and a JWT guarded
// admin group under /api.
type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
	pub  *echo.Group
	api  *echo.Group
}

var server *WebServer

// Init builds the web server. Route registration happens afterwards through
// the Pub*/Api* helpers.
func Init(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = &JSONSerializer{}
	e.Validator = &Validator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger())

	// Uploaded product images are served as static files.
	e.Static("/uploads", cfg.GetUploadDir())

	pub := e.Group("/api")
	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Web.Secret),
	}))

	server = &WebServer{cfg: cfg, root: e, pub: pub, api: api}
	return server
}

// Listen starts the server and blocks.
func Listen() error {
	return server.root.Start(fmt.Sprintf("%s:%d", server.cfg.Web.Host, server.cfg.Web.Port))
}

// Echo exposes the underlying echo instance (used in tests).
func Echo() *echo.Echo {
	return server.root
}

// PubGET registers an unauthenticated GET route under /api.
func PubGET(path string, h echo.HandlerFunc) {
	server.pub.GET(path, h)
}

// PubPOST registers an unauthenticated POST route under /api.
func PubPOST(path string, h echo.HandlerFunc) {
	server.pub.POST(path, h)
}

// ApiGET registers a JWT guarded GET route under /api.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

// ApiPOST registers a JWT guarded POST route under /api.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

// ApiPUT registers a JWT guarded PUT route under /api.
func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

// ApiDELETE registers a JWT guarded DELETE route under /api.
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			metrics.IncrCounter("http_requests")
			if status >= http.StatusInternalServerError {
				metrics.IncrCounter("http_errors")
			}

			zap.L().Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
