package pages

import (
	"bytes"
	"context"
	"testing"

	"freevector_app_go/middleware"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/components"
	"freevector_app_go/templates/partials"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func testContext(lang string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.NonceKey, "test-nonce")
	return i18n.WithLocale(ctx, lang)
}

func landingData(ctx context.Context) LandingData {
	store := catalog.Default()
	all := store.AllIcons()
	plans := services.DefaultPlans()
	return LandingData{
		Meta: components.PageMeta{
			SEO:       models.DefaultSEO("FreeVectorIcons", "Free icons"),
			AppURL:    "https://example.com",
			Path:      "/",
			CSRFToken: "csrf-123",
		},
		HeroChecks: services.HeroChecks(ctx),
		Features:   services.LandingFeatures(ctx),
		Gallery: partials.GalleryData{
			Category: models.CategoryAll,
			Counts:   store.CategoryCounts(),
			Icons:    partials.NewIconViews(store, catalog.Truncate(all, catalog.DisplayLimit)),
			Total:    len(all),
		},
		Popular:      partials.NewIconViews(store, store.PopularIcons()),
		Testimonials: services.Testimonials(),
		Plans:        plans,
		Billing:      models.BillingYearly,
		Savings:      services.PopularPlanSavings(plans),
		Contact:      partials.ContactFormData{CSRFToken: "csrf-123"},
	}
}

func TestLanding(t *testing.T) {
	i18n.MustLoad()

	t.Run("English", func(t *testing.T) {
		ctx := testContext("en")
		html := renderToString(t, ctx, Landing(landingData(ctx)))

		assert.Contains(t, html, "<!doctype html>")
		assert.Contains(t, html, `<html lang="en">`)
		for _, id := range []string{`id="hero"`, `id="features"`, `id="icons"`, `id="testimonials"`, `id="pricing"`} {
			assert.Contains(t, html, id)
		}
		assert.Contains(t, html, "data-reveal")
		assert.Contains(t, html, "<blockquote><p>")
		assert.Contains(t, html, `nonce="test-nonce"`)
		assert.Contains(t, html, "Over 10,000 free vector icons")
		assert.Contains(t, html, "Most Popular")
		assert.Contains(t, html, "Save 25%")
		assert.Contains(t, html, `data-lucide="house"`)
		assert.Contains(t, html, "Showing 24 of 75")
		assert.Contains(t, html, `name="_csrf" value="csrf-123"`)
		assert.Contains(t, html, `hreflang="es"`)
	})

	t.Run("Spanish", func(t *testing.T) {
		ctx := testContext("es")
		html := renderToString(t, ctx, Landing(landingData(ctx)))

		assert.Contains(t, html, `<html lang="es">`)
		assert.Contains(t, html, i18n.Translate("es", "pricing.most_popular"))
	})

	t.Run("MonthlyBilling", func(t *testing.T) {
		ctx := testContext("en")
		data := landingData(ctx)
		data.Billing = models.BillingMonthly
		html := renderToString(t, ctx, Landing(data))

		assert.Contains(t, html, "$12")
		assert.NotContains(t, html, ">$9<")
	})
}

func TestIconsPage(t *testing.T) {
	i18n.MustLoad()
	ctx := testContext("en")
	store := catalog.Default()
	weather, err := store.ByCategory(models.CategoryWeather)
	require.NoError(t, err)

	html := renderToString(t, ctx, IconsPage(IconsPageData{
		Meta: components.PageMeta{Path: "/icons"},
		Gallery: partials.GalleryData{
			Category: models.CategoryWeather,
			Counts:   store.CategoryCounts(),
			Icons:    partials.NewIconViews(store, weather),
			Total:    len(weather),
		},
		Page:  1,
		Pages: 2,
	}))

	assert.Contains(t, html, `data-icon="snowflake"`)
	assert.Contains(t, html, `href="/icons?category=weather&amp;page=2"`)
	assert.Contains(t, html, `href="/#pricing"`)
}

func TestIconDetail(t *testing.T) {
	i18n.MustLoad()
	ctx := testContext("en")
	store := catalog.Default()
	icon, ok := store.Lookup("home")
	require.True(t, ok)

	html := renderToString(t, ctx, IconDetail(IconDetailData{
		Meta:    components.PageMeta{Path: "/icons/home"},
		Icon:    partials.NewIconViews(store, []models.IconRecord{icon})[0],
		Related: partials.NewIconViews(store, store.Related("home", 6)),
	}))

	assert.Contains(t, html, `data-lucide="house"`)
	assert.Contains(t, html, "Related icons")
	assert.Contains(t, html, "UI &amp; Controls")
}

func TestErrorPage(t *testing.T) {
	i18n.MustLoad()
	html := renderToString(t, testContext("en"), ErrorPage(components.PageMeta{Path: "/x"}, 404, "Icon not found."))
	assert.Contains(t, html, "404")
	assert.Contains(t, html, "Icon not found.")
}
