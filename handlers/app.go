package handlers

import (
	"context"
	"fmt"
	"net/http"

	"freevector_app_go/config"
	"freevector_app_go/middleware"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/telemetry"
	"freevector_app_go/templates/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
)

// Shared services the handlers read; set once by Init before serving
var (
	Catalog  *catalog.Store
	Exports  *services.Exporter
	Previews *services.PreviewRenderer
)

// Init wires the catalog and the services built on it. Storage must be
// initialized first so exports are cached in it.
func Init(cfg *config.Config, store *catalog.Store) error {
	previews, err := services.NewPreviewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize preview renderer: %w", err)
	}
	Catalog = store
	Exports = services.NewExporter(store, services.Storage, cfg.ChromePath)
	Previews = previews
	return nil
}

// getConfig returns the config injected by the server middleware
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{Environment: config.EnvDevelopment}
}

// render writes a component as an HTML response
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// pageMeta collects what the layout needs for the current request
func pageMeta(c echo.Context, seo *models.SEO) components.PageMeta {
	cfg := getConfig(c)
	return components.PageMeta{
		SEO:              seo,
		AppURL:           cfg.AppURL,
		Path:             c.Request().URL.Path,
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
}

// filterCatalog runs a catalog query inside a span
func filterCatalog(ctx context.Context, category models.IconCategory, query string) ([]models.IconRecord, error) {
	_, span := telemetry.Tracer().Start(ctx, "catalog.filter")
	defer span.End()

	results, err := Catalog.Filter(category, query)
	span.SetAttributes(
		attribute.String("catalog.category", string(category)),
		attribute.String("catalog.query", catalog.NormalizeQuery(query)),
		attribute.Int("catalog.results", len(results)),
	)
	if err != nil {
		span.RecordError(err)
	}
	return results, err
}

// parseCategory maps an invalid category to a 400
func parseCategory(c echo.Context) (models.IconCategory, error) {
	category, err := catalog.ParseCategory(c.QueryParam("category"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return category, nil
}
