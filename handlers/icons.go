package handlers

import (
	"net/http"
	"strconv"

	"freevector_app_go/models"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/pages"
	"freevector_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// IconsPerPage is the page size of the full gallery
const IconsPerPage = 48

// relatedIconsLimit caps the related icons on a detail page
const relatedIconsLimit = 6

// IconsPageHandler renders the full, paged gallery
func IconsPageHandler(c echo.Context) error {
	ctx := c.Request().Context()

	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	query := c.QueryParam("q")
	results, err := filterCatalog(ctx, category, query)
	if err != nil {
		return err
	}

	pageCount := catalog.PageCount(len(results), IconsPerPage)
	page := 1
	if v := c.QueryParam("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
	}
	if page > pageCount {
		page = pageCount
	}

	seo := buildSEO(c, "icons", i18n.T(ctx, "seo.icons_title"), i18n.T(ctx, "seo.icons_description"), ogImagePath(category))
	if category != models.CategoryAll || query != "" || page > 1 {
		// Filtered views are the same content as the unfiltered gallery
		seo.Canonical = getConfig(c).AppURL + "/icons"
	}

	return render(c, http.StatusOK, pages.IconsPage(pages.IconsPageData{
		Meta: pageMeta(c, seo),
		Gallery: partials.GalleryData{
			Category: category,
			Query:    query,
			Counts:   Catalog.CategoryCounts(),
			Icons:    partials.NewIconViews(Catalog, catalog.Page(results, (page-1)*IconsPerPage, IconsPerPage)),
			Total:    len(results),
		},
		Page:  page,
		Pages: pageCount,
	}))
}

// IconDetailHandler renders a single icon with related icons from its category
func IconDetailHandler(c echo.Context) error {
	icon, ok := Catalog.Lookup(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, i18n.T(c.Request().Context(), "errors.not_found"))
	}

	return render(c, http.StatusOK, pages.IconDetail(pages.IconDetailData{
		Meta:    pageMeta(c, iconSEO(c, icon)),
		Icon:    partials.NewIconViews(Catalog, []models.IconRecord{icon})[0],
		Related: partials.NewIconViews(Catalog, Catalog.Related(icon.ID, relatedIconsLimit)),
	}))
}

func ogImagePath(category models.IconCategory) string {
	if category == models.CategoryAll {
		return defaultOGImagePath
	}
	return "/og/" + category.Slug() + ".png"
}
