package handlers

import (
	"freevector_app_go/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts every public route on e
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", LandingHandler)
	e.GET("/icons", IconsPageHandler)
	e.GET("/icons/:id", IconDetailHandler)

	// HTMX partials
	e.GET("/htmx/icons", GalleryHTMX)

	// Contact sales form
	e.POST("/contact-sales", ContactSalesHandler, middleware.PublicFormRateLimiter.Middleware())

	// Catalog exports and Open Graph cards
	e.GET("/downloads/:file", DownloadHandler)
	e.GET("/og/:file", PreviewHandler)

	// JSON API
	api := e.Group("/api/icons")
	api.Use(middleware.APIRateLimiter.Middleware())
	{
		api.GET("", GetIconsAPI)
		api.GET("/popular", GetPopularIconsAPI)
		api.GET("/categories", GetCategoriesAPI)
		api.GET("/:id", GetIconAPI)
	}

	// SEO and ops
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/robots.txt", RobotsHandler)
	e.GET("/healthz", HealthHandler)
}
