package handlers

import (
	"net/http"

	"freevector_app_go/services/catalog"
	"freevector_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// GalleryHTMX returns the gallery body for a category and query, capped at
// the display limit
func GalleryHTMX(c echo.Context) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	query := c.QueryParam("q")

	results, err := filterCatalog(c.Request().Context(), category, query)
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, partials.GalleryBody(partials.GalleryData{
		Category: category,
		Query:    query,
		Counts:   Catalog.CategoryCounts(),
		Icons:    partials.NewIconViews(Catalog, catalog.Truncate(results, catalog.DisplayLimit)),
		Total:    len(results),
	}))
}
