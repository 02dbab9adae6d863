package pages

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"freevector_app_go/models"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/components"
	"freevector_app_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IconsPage renders one page of the full gallery
func IconsPage(data IconsPageData) templ.Component {
	return components.Build(func(ctx context.Context) g.Node {
		return components.Layout(ctx, data.Meta,
			h.Section(
				h.Class("section page-top"),
				h.Div(
					h.Class("container"),
					h.Div(
						h.Class("section-heading"),
						h.H1(g.Text(i18n.T(ctx, "icons_page.title"))),
						h.P(h.Class("muted"), g.Text(i18n.T(ctx, "icons_page.subtitle"))),
					),
					categoryLinks(data.Gallery),
					h.P(h.Class("gallery-summary muted"),
						g.Text(i18n.T(ctx, "gallery.results", map[string]interface{}{"count": strconv.Itoa(data.Gallery.Total)})),
					),
					g.If(len(data.Gallery.Icons) == 0,
						h.P(h.Class("gallery-empty muted"), g.Text(i18n.T(ctx, "gallery.empty"))),
					),
					partials.IconGrid(data.Gallery.Icons),
					pager(ctx, data),
				),
			),
		)
	})
}

func iconsPageURL(category models.IconCategory, query string, page int) string {
	v := url.Values{}
	if category != models.CategoryAll {
		v.Set("category", category.Slug())
	}
	if query != "" {
		v.Set("q", query)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/icons"
	}
	return "/icons?" + v.Encode()
}

func categoryLinks(data partials.GalleryData) g.Node {
	return h.Nav(
		h.Class("category-chips"),
		g.Map(data.Counts, func(cc models.CategoryCount) g.Node {
			class := "chip"
			if cc.Category == data.Category {
				class = "chip chip-active"
			}
			return h.A(
				h.Href(iconsPageURL(cc.Category, data.Query, 1)), h.Class(class),
				g.Text(string(cc.Category)),
				h.Span(h.Class("chip-count"), g.Text(strconv.Itoa(cc.Count))),
			)
		}),
	)
}

func pager(ctx context.Context, data IconsPageData) g.Node {
	if data.Pages <= 1 {
		return nil
	}
	category, query := data.Gallery.Category, data.Gallery.Query
	return h.Nav(
		h.Class("pager"),
		g.If(data.Page > 1, h.A(
			h.Href(iconsPageURL(category, query, data.Page-1)), h.Class("btn btn-outline"), h.Rel("prev"),
			components.Glyph("arrow-left", "icon-sm"), g.Text(i18n.T(ctx, "icons_page.previous")),
		)),
		h.Span(h.Class("muted"), g.Text(i18n.T(ctx, "icons_page.page", map[string]interface{}{
			"page":  strconv.Itoa(data.Page),
			"pages": strconv.Itoa(data.Pages),
		}))),
		g.If(data.Page < data.Pages, h.A(
			h.Href(iconsPageURL(category, query, data.Page+1)), h.Class("btn btn-outline"), h.Rel("next"),
			g.Text(i18n.T(ctx, "icons_page.next")), components.Glyph("arrow-right", "icon-sm"),
		)),
	)
}

// IconDetail renders the page of a single icon with its related icons
func IconDetail(data IconDetailData) templ.Component {
	icon := data.Icon
	return components.Build(func(ctx context.Context) g.Node {
		return components.Layout(ctx, data.Meta,
			h.Section(
				h.Class("section page-top"),
				h.Div(
					h.Class("container narrow"),
					h.A(h.Href("/icons"), h.Class("back-link muted"),
						components.Glyph("arrow-left", "icon-sm"), g.Text(i18n.T(ctx, "icon_detail.back")),
					),
					h.Div(
						h.Class("card icon-detail"),
						h.Div(h.Class("icon-detail-glyph"), components.Glyph(icon.Glyph, "icon-xl")),
						h.Div(
							h.H1(g.Text(icon.DisplayName)),
							g.If(icon.Popular, h.Span(h.Class("badge badge-accent"), g.Text(i18n.T(ctx, "icon_detail.popular_badge")))),
							h.Dl(
								h.Dt(g.Text(i18n.T(ctx, "icon_detail.category"))),
								h.Dd(h.A(h.Href(iconsPageURL(icon.Category, "", 1)), g.Text(string(icon.Category)))),
								g.If(len(icon.Tags) > 0, g.Group([]g.Node{
									h.Dt(g.Text(i18n.T(ctx, "icon_detail.tags"))),
									h.Dd(g.Map(icon.Tags, func(tag string) g.Node {
										return h.A(h.Href(iconsPageURL(models.CategoryAll, tag, 1)), h.Class("tag"), g.Text(tag))
									})),
								})),
							),
							h.Code(h.Class("snippet"), g.Text(`<i data-lucide="`+icon.Glyph+`"></i>`)),
						),
					),
					g.If(len(data.Related) > 0, g.Group([]g.Node{
						h.H2(g.Text(i18n.T(ctx, "icon_detail.related"))),
						partials.IconGrid(data.Related),
					})),
				),
			),
		)
	})
}

// ErrorPage renders a minimal page for HTML errors
func ErrorPage(meta components.PageMeta, status int, message string) templ.Component {
	return components.Build(func(ctx context.Context) g.Node {
		return components.Layout(ctx, meta,
			h.Section(
				h.Class("section page-top"),
				h.Div(
					h.Class("container narrow center"),
					h.P(h.Class("error-status accent"), g.Text(strconv.Itoa(status))),
					h.H1(g.Text(strings.TrimSpace(message))),
					h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text(i18n.T(ctx, "brand.name"))),
				),
			),
		)
	})
}
