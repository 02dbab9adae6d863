package handlers

import (
	"freevector_app_go/models"
	"freevector_app_go/services/i18n"
	"strings"

	"github.com/labstack/echo/v4"
)

const defaultOGImagePath = "/og/icons.png"

// SEO defaults for public pages; titles and descriptions are localized per request
var pageSEO = map[string]*models.SEO{
	"landing": {
		Keywords:    "free vector icons, svg icons, icon library, ui icons, royalty-free icons",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"icons": {
		Keywords:    "icon collection, svg icon search, icon categories",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"icon": {
		OGType:      "article",
		TwitterCard: "summary",
	},
	"error": {
		OGType:      "website",
		TwitterCard: "summary",
		NoIndex:     true,
	},
}

// GetSEO returns the SEO configuration for a page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		copy := *seo
		return &copy
	}
	return nil
}

// buildSEO fills a page's SEO defaults with the localized title and
// description and the absolute URLs for the current request
func buildSEO(c echo.Context, page, title, description, ogImagePath string) *models.SEO {
	seo := GetSEO(page)
	if seo == nil {
		seo = models.DefaultSEO(title, description)
	}
	seo.Title = title
	seo.Description = description

	appURL := getConfig(c).AppURL
	seo.Canonical = appURL + c.Request().URL.Path
	if ogImagePath == "" {
		ogImagePath = defaultOGImagePath
	}
	seo.OGImage = appURL + ogImagePath
	return seo.WithLocale(i18n.GetLocale(c.Request().Context()), i18n.Supported()...)
}

// iconSEO describes a single icon page
func iconSEO(c echo.Context, icon models.IconRecord) *models.SEO {
	ctx := c.Request().Context()
	tags := strings.Join(icon.Tags, ", ")
	seo := buildSEO(c, "icon",
		i18n.T(ctx, "seo.icon_title", map[string]interface{}{"name": icon.DisplayName}),
		i18n.T(ctx, "seo.icon_description", map[string]interface{}{
			"name":     icon.DisplayName,
			"category": string(icon.Category),
			"tags":     tags,
		}),
		ogImagePath(icon.Category),
	)
	seo.Keywords = tags
	return seo
}
