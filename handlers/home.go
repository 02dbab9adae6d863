package handlers

import (
	"net/http"

	"freevector_app_go/db"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/pages"
	"freevector_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page. The gallery starts from the
// category and query in the URL so the no-JavaScript chips work too.
func LandingHandler(c echo.Context) error {
	data, err := landingData(c, services.ContactInput{}, "")
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, pages.Landing(data))
}

// landingData assembles the landing page for the current request; the contact
// values and error are carried over when the form is re-rendered
func landingData(c echo.Context, contact services.ContactInput, contactError string) (pages.LandingData, error) {
	ctx := c.Request().Context()

	category, err := parseCategory(c)
	if err != nil {
		return pages.LandingData{}, err
	}
	query := c.QueryParam("q")
	results, err := filterCatalog(ctx, category, query)
	if err != nil {
		return pages.LandingData{}, err
	}

	plans := services.ListActivePlans(db.DB)
	seo := buildSEO(c, "landing", i18n.T(ctx, "seo.home_title"), i18n.T(ctx, "seo.home_description"), "")
	meta := pageMeta(c, seo)

	return pages.LandingData{
		Meta:       meta,
		HeroChecks: services.HeroChecks(ctx),
		Features:   services.LandingFeatures(ctx),
		Gallery: partials.GalleryData{
			Category: category,
			Query:    query,
			Counts:   Catalog.CategoryCounts(),
			Icons:    partials.NewIconViews(Catalog, catalog.Truncate(results, catalog.DisplayLimit)),
			Total:    len(results),
		},
		Popular:      partials.NewIconViews(Catalog, Catalog.PopularIcons()),
		Testimonials: services.Testimonials(),
		Plans:        plans,
		Billing:      models.NormalizeBilling(c.QueryParam("billing")),
		Savings:      services.PopularPlanSavings(plans),
		Contact: partials.ContactFormData{
			CSRFToken:        meta.CSRFToken,
			TurnstileSiteKey: meta.TurnstileSiteKey,
			Values:           contact,
			Error:            contactError,
		},
	}, nil
}
