package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"freevector_app_go/models"
	"freevector_app_go/services/catalog"

	"github.com/labstack/echo/v4"
)

// apiCacheControl lets clients reuse a response briefly and revalidate with the ETag
const apiCacheControl = "public, max-age=300"

// IconListResponse is a page of filter results
type IconListResponse struct {
	Data     []models.IconRecord `json:"data"`
	Total    int                 `json:"total"`
	Limit    int                 `json:"limit"`
	Offset   int                 `json:"offset"`
	Category models.IconCategory `json:"category"`
	Query    string              `json:"query"`
}

// GetIconsAPI filters the catalog and returns one page of the result.
// limit defaults to the gallery display limit and is capped at the catalog size.
func GetIconsAPI(c echo.Context) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	query := catalog.NormalizeQuery(c.QueryParam("q"))

	limit, err := intParam(c, "limit", catalog.DisplayLimit)
	if err != nil || limit < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
	}
	if limit > Catalog.Len() {
		limit = Catalog.Len()
	}
	offset, err := intParam(c, "offset", 0)
	if err != nil || offset < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "offset must be a non-negative integer")
	}

	etag := Catalog.QueryETag("icons", string(category), query, strconv.Itoa(limit), strconv.Itoa(offset))
	if notModified(c, etag) {
		return c.NoContent(http.StatusNotModified)
	}

	results, err := filterCatalog(c.Request().Context(), category, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, IconListResponse{
		Data:     catalog.Page(results, offset, limit),
		Total:    len(results),
		Limit:    limit,
		Offset:   offset,
		Category: category,
		Query:    query,
	})
}

// GetPopularIconsAPI returns the popular icons in catalog order
func GetPopularIconsAPI(c echo.Context) error {
	if notModified(c, Catalog.QueryETag("popular")) {
		return c.NoContent(http.StatusNotModified)
	}
	popular := Catalog.PopularIcons()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  popular,
		"total": len(popular),
	})
}

// GetCategoriesAPI returns the declared categories with their record counts
func GetCategoriesAPI(c echo.Context) error {
	if notModified(c, Catalog.QueryETag("categories")) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": Catalog.CategoryCounts(),
	})
}

// GetIconAPI returns a single icon
func GetIconAPI(c echo.Context) error {
	icon, ok := Catalog.Lookup(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "icon not found")
	}
	if notModified(c, Catalog.QueryETag("icon", icon.ID)) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, icon)
}

func intParam(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// notModified sets the API validators on the response and reports whether
// the request's If-None-Match already holds the ETag
func notModified(c echo.Context, etag string) bool {
	return notModifiedWith(c, etag, apiCacheControl)
}

// notModifiedWith is notModified with a caller-chosen Cache-Control
func notModifiedWith(c echo.Context, etag, cacheControl string) bool {
	h := c.Response().Header()
	h.Set("ETag", etag)
	h.Set("Cache-Control", cacheControl)

	match := c.Request().Header.Get("If-None-Match")
	if match == "" {
		return false
	}
	for _, candidate := range strings.Split(match, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
