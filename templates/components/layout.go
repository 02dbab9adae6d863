package components

import (
	"context"
	"strconv"
	"strings"
	"time"

	"freevector_app_go/middleware"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Script sources allowed by the CSP
const (
	htmxScript      = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	lucideScript    = "https://unpkg.com/lucide@0.468.0/dist/umd/lucide.min.js"
	turnstileScript = "https://challenges.cloudflare.com/turnstile/v0/api.js"
)

// PageMeta is what every full page needs besides its own content
type PageMeta struct {
	SEO              *models.SEO
	AppURL           string
	Path             string // request path, used for hreflang and the language switch
	CSRFToken        string
	TurnstileSiteKey string
}

// Layout wraps page content with the document head, navigation and footer
func Layout(ctx context.Context, meta PageMeta, content ...g.Node) g.Node {
	locale := i18n.GetLocale(ctx)
	nonce := middleware.GetNonce(ctx)

	return h.Doctype(
		h.HTML(
			h.Lang(locale),
			head(ctx, meta, nonce),
			h.Body(
				g.Attr("hx-headers", JSON(map[string]string{"X-CSRF-Token": meta.CSRFToken})),
				Navbar(ctx, meta.Path),
				h.Div(h.ID(FlashID), h.Class("flash"), g.Attr("aria-live", "polite")),
				h.Main(h.ID("main"), g.Group(content)),
				Footer(ctx),
				script(htmxScript, nonce),
				script(lucideScript, nonce),
				script(middleware.AssetURL("js/app.js"), nonce),
				g.If(meta.TurnstileSiteKey != "", script(turnstileScript, nonce)),
			),
		),
	)
}

// FlashID is the element HTMX error fragments are swapped into
const FlashID = "flash"

func script(src, nonce string) g.Node {
	return h.Script(h.Src(src), h.Defer(), g.Attr("nonce", nonce))
}

func head(ctx context.Context, meta PageMeta, nonce string) g.Node {
	seo := meta.SEO
	if seo == nil {
		seo = models.DefaultSEO(i18n.T(ctx, "brand.name"), i18n.T(ctx, "brand.tagline"))
	}

	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(seo.Title)),
		h.Meta(h.Name("description"), h.Content(seo.Description)),
		g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
		h.Meta(h.Name("robots"), h.Content(seo.Robots())),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),

		// Open Graph / Twitter
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.GetOGTitle())),
		h.Meta(g.Attr("property", "og:description"), h.Content(seo.GetOGDesc())),
		h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
		h.Meta(g.Attr("property", "og:locale"), h.Content(seo.Locale)),
		g.If(seo.OGImage != "", h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage))),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),

		g.Map(seo.AltLocales, func(alt string) g.Node {
			return h.Link(h.Rel("alternate"), g.Attr("hreflang", alt), h.Href(LocalizedURL(meta.AppURL+meta.Path, alt)))
		}),

		h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL("images/favicon.svg"))),
		h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL("css/app.css"))),

		h.Script(h.Type("application/ld+json"), g.Attr("nonce", nonce), g.Raw(JSON(map[string]string{
			"@context": "https://schema.org",
			"@type":    "WebSite",
			"name":     i18n.T(ctx, "brand.name"),
			"url":      meta.AppURL,
		}))),
	)
}

// LocalizedURL appends the lang query parameter to a URL without a query
func LocalizedURL(url, lang string) string {
	if strings.Contains(url, "?") {
		return url + "&lang=" + lang
	}
	return url + "?lang=" + lang
}

// Navbar renders the fixed header. Off the landing page the section anchors
// point back at "/".
func Navbar(ctx context.Context, path string) g.Node {
	prefix := ""
	if path != "/" {
		prefix = "/"
	}
	locale := i18n.GetLocale(ctx)

	return h.Header(
		h.Class("site-header"), h.ID("top"),
		h.Div(
			h.Class("container header-inner"),
			h.A(h.Href("/"), h.Class("brand"),
				g.Text("FreeVector"), h.Span(h.Class("accent"), g.Text("Icons")),
			),
			h.Nav(
				h.Class("site-nav"), h.ID("site-nav"),
				g.Attr("aria-label", i18n.T(ctx, "nav.menu")),
				g.Map(services.NavLinks(ctx), func(l models.NavLink) g.Node {
					return h.A(h.Href(prefix+l.Href), h.Class("nav-link"), g.Text(l.Label))
				}),
			),
			h.Div(
				h.Class("header-actions"),
				h.Div(
					h.Class("lang-switch"),
					g.Attr("aria-label", i18n.T(ctx, "nav.language")),
					g.Map(i18n.Supported(), func(lang string) g.Node {
						return h.A(
							h.Href(LocalizedURL(path, lang)),
							h.Class("lang-option"),
							g.If(lang == locale, g.Attr("aria-current", "true")),
							g.Text(strings.ToUpper(lang)),
						)
					}),
				),
				h.A(h.Href(prefix+"#pricing"), h.Class("btn btn-primary"), g.Text(i18n.T(ctx, "nav.get_started"))),
				h.Button(
					h.Type("button"), h.Class("menu-toggle"),
					g.Attr("aria-controls", "site-nav"), g.Attr("aria-expanded", "false"),
					g.Attr("aria-label", i18n.T(ctx, "nav.menu")),
					Glyph("menu", "icon-md"),
				),
			),
		),
	)
}

// Footer renders the site footer with product links and the copyright line
func Footer(ctx context.Context) g.Node {
	year := strconv.Itoa(time.Now().Year())

	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("container footer-grid"),
			h.Div(
				h.A(h.Href("/"), h.Class("brand"),
					g.Text("FreeVector"), h.Span(h.Class("accent"), g.Text("Icons")),
				),
				h.P(h.Class("muted"), g.Text(i18n.T(ctx, "footer.description"))),
			),
			h.Div(
				h.H3(g.Text(i18n.T(ctx, "footer.product"))),
				h.Ul(
					h.Li(h.A(h.Href("/icons"), g.Text(i18n.T(ctx, "gallery.view_all")))),
					h.Li(h.A(h.Href("/#pricing"), g.Text(i18n.T(ctx, "nav.pricing")))),
					h.Li(h.A(h.Href("/#features"), g.Text(i18n.T(ctx, "nav.features")))),
				),
			),
			h.Div(
				h.H3(g.Text(i18n.T(ctx, "footer.resources"))),
				h.Ul(
					h.Li(h.A(h.Href("/downloads/icons.zip"), g.Text(i18n.T(ctx, "downloads.zip")))),
					h.Li(h.A(h.Href("/downloads/cheatsheet.pdf"), g.Text(i18n.T(ctx, "downloads.pdf")))),
					h.Li(h.A(h.Href("/api/icons"), g.Text("JSON API"))),
				),
			),
		),
		h.P(h.Class("container copyright muted"),
			g.Text(i18n.T(ctx, "footer.copyright", map[string]interface{}{"year": year})),
		),
	)
}
