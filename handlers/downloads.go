package handlers

import (
	"errors"
	"log"
	"net/http"
	"slices"

	"freevector_app_go/services"

	"github.com/labstack/echo/v4"
)

const downloadCacheControl = "public, max-age=3600"

// DownloadHandler streams a catalog export, building and caching it on first use
func DownloadHandler(c echo.Context) error {
	name := c.Param("file")
	if !slices.Contains(services.ExportFiles, name) {
		return echo.NewHTTPError(http.StatusNotFound, "export not found")
	}
	if notModifiedWith(c, Catalog.QueryETag("export", name), downloadCacheControl) {
		return c.NoContent(http.StatusNotModified)
	}

	rc, contentType, err := Exports.Open(c.Request().Context(), name)
	switch {
	case errors.Is(err, services.ErrUnknownExport):
		return echo.NewHTTPError(http.StatusNotFound, "export not found")
	case errors.Is(err, services.ErrChromeUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "PDF export is not available on this server")
	case err != nil:
		log.Printf("[EXPORT] Failed to serve %s: %v", name, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate export")
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Stream(http.StatusOK, contentType, rc)
}
