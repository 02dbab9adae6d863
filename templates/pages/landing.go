package pages

import (
	"context"
	"strconv"

	"freevector_app_go/models"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/components"
	"freevector_app_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Glyphs of the hero showcase grid, cycled across its tiles
var showcaseGlyphs = []string{"pen-tool", "file-down", "maximize", "gift"}

const showcaseTiles = 20

// Landing renders the marketing page
func Landing(data LandingData) templ.Component {
	return components.Build(func(ctx context.Context) g.Node {
		return components.Layout(ctx, data.Meta,
			hero(ctx, data.HeroChecks),
			features(ctx, data.Features),
			gallery(ctx, data),
			popular(ctx, data.Popular),
			testimonials(ctx, data.Testimonials),
			pricing(ctx, data),
			downloads(ctx),
		)
	})
}

func sectionHeading(ctx context.Context, titleKey, highlightKey, subtitleKey string) g.Node {
	return h.Div(
		h.Class("section-heading"), h.Data("reveal", ""),
		h.H2(
			g.Text(i18n.T(ctx, titleKey)+" "),
			h.Span(h.Class("accent"), g.Text(i18n.T(ctx, highlightKey))),
		),
		g.If(subtitleKey != "", h.P(h.Class("muted"), g.Text(i18n.T(ctx, subtitleKey)))),
	)
}

func hero(ctx context.Context, checks []string) g.Node {
	tiles := make([]g.Node, showcaseTiles)
	for i := range tiles {
		tiles[i] = h.Div(
			h.Class("showcase-tile tone-"+strconv.Itoa(i%3)),
			g.Attr("style", "--stagger: "+strconv.Itoa(i)),
			components.Glyph(showcaseGlyphs[i%len(showcaseGlyphs)], "icon-md"),
		)
	}

	return h.Section(
		h.Class("hero"), h.ID("hero"),
		h.Div(
			h.Class("container narrow center"),
			h.Div(h.Class("badge"), components.Glyph("gift", "icon-sm"), h.Span(g.Text(i18n.T(ctx, "hero.badge")))),
			h.H1(
				g.Text(i18n.T(ctx, "hero.title")+" "),
				h.Br(),
				h.Span(h.Class("accent"), g.Text(i18n.T(ctx, "hero.title_highlight"))),
			),
			h.P(h.Class("lead muted"), g.Text(i18n.T(ctx, "hero.subtitle"))),
			h.Div(
				h.Class("hero-ctas"),
				h.A(h.Href("#icons"), h.Class("btn btn-primary btn-lg"),
					g.Text(i18n.T(ctx, "hero.cta_browse")),
					components.Glyph("arrow-right", "icon-sm"),
				),
				h.A(h.Href("/downloads/icons.zip"), h.Class("btn btn-outline btn-lg"),
					components.Glyph("file-down", "icon-sm"),
					g.Text(i18n.T(ctx, "hero.cta_download")),
				),
			),
		),
		h.Div(h.Class("showcase"), g.Attr("aria-hidden", "true"), g.Group(tiles)),
		h.Ul(
			h.Class("hero-checks muted"),
			g.Map(checks, func(check string) g.Node {
				return h.Li(components.Glyph("check", "icon-sm accent"), g.Text(check))
			}),
		),
	)
}

func features(ctx context.Context, list []models.Feature) g.Node {
	return h.Section(
		h.Class("section section-alt"), h.ID("features"),
		h.Div(
			h.Class("container"),
			sectionHeading(ctx, "features.title", "features.title_highlight", "features.subtitle"),
			h.Div(
				h.Class("feature-grid"),
				g.Map(list, func(f models.Feature) g.Node {
					return h.Div(
						h.Class("card feature-card"), h.Data("reveal", ""),
						h.Div(h.Class("feature-icon"), components.Glyph(f.Icon, "icon-md")),
						h.H3(g.Text(f.Title)),
						h.P(h.Class("muted"), g.Text(f.Description)),
					)
				}),
			),
		),
	)
}

func gallery(ctx context.Context, data LandingData) g.Node {
	return h.Section(
		h.Class("section"), h.ID("icons"),
		h.Div(
			h.Class("container"),
			sectionHeading(ctx, "gallery.title", "gallery.title_highlight", ""),
			h.Div(
				h.Class("search-box"), h.Data("reveal", ""),
				components.Glyph("search", "icon-sm muted"),
				h.Input(
					h.ID("gallery-search"), h.Type("search"), h.Name("q"),
					h.Value(data.Gallery.Query),
					h.Placeholder(i18n.T(ctx, "gallery.search_placeholder")),
					g.Attr("aria-label", i18n.T(ctx, "gallery.search_label")),
					h.AutoComplete("off"),
					g.Attr("hx-get", "/htmx/icons"),
					g.Attr("hx-trigger", "keyup changed delay:250ms, search"),
					g.Attr("hx-include", "#gallery-category"),
					g.Attr("hx-target", "#"+partials.GalleryTargetID),
					g.Attr("hx-swap", "outerHTML"),
				),
			),
			partials.GalleryBodyNode(ctx, data.Gallery),
			h.Div(
				h.Class("center"),
				h.A(h.Href("/icons"), h.Class("btn btn-outline"),
					g.Text(i18n.T(ctx, "gallery.view_all")),
					components.Glyph("arrow-right", "icon-sm"),
				),
			),
		),
	)
}

func popular(ctx context.Context, icons []partials.IconView) g.Node {
	if len(icons) == 0 {
		return nil
	}
	return h.Section(
		h.Class("section section-alt"), h.ID("popular"),
		h.Div(
			h.Class("container"),
			h.Div(
				h.Class("section-heading"), h.Data("reveal", ""),
				h.H2(g.Text(i18n.T(ctx, "popular.title"))),
				h.P(h.Class("muted"), g.Text(i18n.T(ctx, "popular.subtitle"))),
			),
			partials.IconGrid(icons),
		),
	)
}

func testimonials(ctx context.Context, list []models.Testimonial) g.Node {
	return h.Section(
		h.Class("section"), h.ID("testimonials"),
		h.Div(
			h.Class("container"),
			h.Div(
				h.Class("section-heading"), h.Data("reveal", ""),
				h.H2(
					g.Text(i18n.T(ctx, "testimonials.title")+" "),
					h.Span(h.Class("accent"), g.Text(i18n.T(ctx, "testimonials.title_highlight"))),
					g.Text(" "+i18n.T(ctx, "testimonials.title_suffix")),
				),
				h.P(h.Class("muted"), g.Text(i18n.T(ctx, "testimonials.subtitle"))),
			),
			h.Div(
				h.Class("testimonial-grid"),
				g.Map(list, func(t models.Testimonial) g.Node {
					return h.Figure(
						h.Class("card testimonial"), h.Data("reveal", ""),
						stars(ctx, t.Rating),
						h.BlockQuote(h.P(g.Text(t.Quote))),
						h.FigCaption(
							h.Span(h.Class("avatar"), g.Text(t.Initials())),
							h.Div(
								h.Strong(g.Text(t.Author)),
								h.Span(h.Class("muted"), g.Text(t.Role+", "+t.Company)),
							),
						),
					)
				}),
			),
		),
	)
}

func stars(ctx context.Context, rating int) g.Node {
	nodes := make([]g.Node, 5)
	for i := range nodes {
		class := "icon-sm star"
		if i < rating {
			class += " star-filled"
		}
		nodes[i] = components.Glyph("star", class)
	}
	return h.Div(
		h.Class("stars"), h.Role("img"),
		g.Attr("aria-label", i18n.T(ctx, "testimonials.rating", map[string]interface{}{"rating": strconv.Itoa(rating)})),
		g.Group(nodes),
	)
}

func pricing(ctx context.Context, data LandingData) g.Node {
	billing := models.NormalizeBilling(data.Billing)
	toggle := func(period, labelKey string) g.Node {
		class := "toggle-option"
		if period == billing {
			class += " toggle-active"
		}
		return h.A(
			h.Href("/?billing="+period+"#pricing"), h.Class(class),
			g.Attr("hx-get", "/?billing="+period),
			g.Attr("hx-select", "#pricing"),
			g.Attr("hx-target", "#pricing"),
			g.Attr("hx-swap", "outerHTML"),
			g.If(period == billing, g.Attr("aria-current", "true")),
			g.Text(i18n.T(ctx, labelKey)),
		)
	}

	return h.Section(
		h.Class("section section-alt"), h.ID("pricing"),
		h.Div(
			h.Class("container"),
			sectionHeading(ctx, "pricing.title", "pricing.title_highlight", "pricing.subtitle"),
			h.Div(
				h.Class("billing-toggle"),
				toggle(models.BillingMonthly, "pricing.monthly"),
				toggle(models.BillingYearly, "pricing.yearly"),
				g.If(data.Savings > 0, h.Span(h.Class("badge badge-accent"),
					g.Text(i18n.T(ctx, "pricing.save", map[string]interface{}{"percent": strconv.Itoa(data.Savings)})),
				)),
			),
			h.Div(
				h.Class("plan-grid"),
				g.Map(data.Plans, func(p models.Plan) g.Node {
					return planCard(ctx, p, billing)
				}),
			),
			h.Div(
				h.Class("card custom-plan"), h.ID("contact-sales"), h.Data("reveal", ""),
				h.Div(
					h.H3(g.Text(i18n.T(ctx, "pricing.custom_title"))),
					h.P(h.Class("muted"), g.Text(i18n.T(ctx, "pricing.custom_subtitle"))),
				),
				g.If(data.ContactSent == "", partials.ContactFormNode(ctx, data.Contact)),
				g.If(data.ContactSent != "", partials.ContactSuccessNode(ctx, data.ContactSent)),
			),
		),
	)
}

func planCard(ctx context.Context, p models.Plan, billing string) g.Node {
	class := "card plan"
	if p.IsPopular {
		class += " plan-popular"
	}
	ctaHref := "/icons"
	if p.Tier == models.PlanTierEnterprise {
		ctaHref = "#contact-sales"
	}

	return h.Div(
		h.Class(class), h.Data("reveal", ""), h.Data("tier", p.Tier),
		g.If(p.IsPopular, h.Div(h.Class("plan-ribbon"), g.Text(i18n.T(ctx, "pricing.most_popular")))),
		h.H3(g.Text(p.Name)),
		h.P(h.Class("plan-description"), g.Text(p.Description)),
		h.Div(
			h.Class("plan-price"),
			h.Span(h.Class("price"), g.Text(p.FormatPrice(billing))),
			g.If(!p.IsFree(), h.Span(h.Class("muted"), g.Text(" "+i18n.T(ctx, "pricing.per_month")))),
		),
		h.Ul(
			h.Class("plan-features"),
			g.Map(p.Features, func(f string) g.Node {
				return h.Li(components.Glyph("check", "icon-sm accent"), g.Text(f))
			}),
		),
		h.A(h.Href(ctaHref), h.Class(ctaClass(p)), g.Text(p.CTAText)),
	)
}

func ctaClass(p models.Plan) string {
	if p.IsPopular {
		return "btn btn-accent btn-block"
	}
	return "btn btn-outline btn-block"
}

func downloads(ctx context.Context) g.Node {
	links := []struct {
		href, glyph, key string
	}{
		{"/downloads/icons.xlsx", "file-spreadsheet", "downloads.xlsx"},
		{"/downloads/icons.csv", "file-text", "downloads.csv"},
		{"/downloads/icons.zip", "file-archive", "downloads.zip"},
		{"/downloads/cheatsheet.pdf", "file-type", "downloads.pdf"},
	}
	return h.Section(
		h.Class("section"), h.ID("downloads"),
		h.Div(
			h.Class("container center"),
			h.H2(h.Data("reveal", ""), g.Text(i18n.T(ctx, "downloads.title"))),
			h.Div(
				h.Class("download-links"),
				g.Map(links, func(l struct{ href, glyph, key string }) g.Node {
					return h.A(h.Href(l.href), h.Class("btn btn-outline"), g.Attr("download", ""),
						components.Glyph(l.glyph, "icon-sm"),
						g.Text(i18n.T(ctx, l.key)),
					)
				}),
			),
		),
	)
}
