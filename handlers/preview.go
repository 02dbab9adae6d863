package handlers

import (
	"errors"
	"net/http"
	"strings"

	"freevector_app_go/models"
	"freevector_app_go/services/catalog"

	"github.com/labstack/echo/v4"
)

const previewCacheControl = "public, max-age=86400"

// PreviewHandler serves the Open Graph card of the catalog (/og/icons.png) or
// of one category (/og/:category.png)
func PreviewHandler(c echo.Context) error {
	slug := strings.TrimSuffix(c.Param("file"), ".png")

	category := models.CategoryAll
	if slug != "icons" {
		parsed, err := catalog.ParseCategory(slug)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "preview not found")
		}
		category = parsed
	}

	if notModifiedWith(c, Catalog.QueryETag("og", string(category)), previewCacheControl) {
		return c.NoContent(http.StatusNotModified)
	}

	png, err := Previews.Render(Catalog, category)
	if errors.Is(err, catalog.ErrInvalidCategory) {
		return echo.NewHTTPError(http.StatusNotFound, "preview not found")
	}
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
