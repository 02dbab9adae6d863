package handlers

import (
	"fmt"
	"net/http"

	"freevector_app_go/config"
	"freevector_app_go/middleware"

	"github.com/klauspost/compress/gzhttp"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// compressMinSize is the smallest response body worth compressing
const compressMinSize = 1024

// Server is the routed Echo instance and the compressed handler that serves it
type Server struct {
	Echo    *echo.Echo
	Handler http.Handler
}

// NewServer builds the full middleware stack and route table. Compression
// wraps Echo from the outside so error responses written by
// HTTPErrorHandler go through the same live writer as handler output.
func NewServer(cfg *config.Config) (*Server, error) {
	gzip, err := gzhttp.NewWrapper(gzhttp.MinSize(compressMinSize))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize compression: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Tracing())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		HSTSMaxAge:         hstsMaxAge(cfg),
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.CSPNonce(middleware.NewPolicy(cfg)))
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.Static("/static", "static")

	RegisterRoutes(e)

	return &Server{Echo: e, Handler: gzip(e)}, nil
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
