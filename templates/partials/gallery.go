package partials

import (
	"context"

	"freevector_app_go/models"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// GalleryTargetID is the element the chips and search box swap
const GalleryTargetID = "gallery-body"

// IconView is a record with the glyph that draws it
type IconView struct {
	models.IconRecord
	Glyph string
}

// NewIconViews resolves the glyph of every record against the store
func NewIconViews(store *catalog.Store, records []models.IconRecord) []IconView {
	out := make([]IconView, len(records))
	for i, r := range records {
		out[i] = IconView{IconRecord: r, Glyph: store.GlyphNameOrDefault(r.ID)}
	}
	return out
}

// GalleryData is the state of the landing gallery
type GalleryData struct {
	Category models.IconCategory
	Query    string
	Counts   []models.CategoryCount
	Icons    []IconView // already truncated for display
	Total    int        // matches before truncation
}

// GalleryBody is the HTMX partial: category chips, the hidden category
// field the search box includes, and the result grid.
func GalleryBody(data GalleryData) templ.Component {
	return components.Build(func(ctx context.Context) g.Node {
		return GalleryBodyNode(ctx, data)
	})
}

// GalleryBodyNode renders the swappable gallery region
func GalleryBodyNode(ctx context.Context, data GalleryData) g.Node {
	return h.Div(
		h.ID(GalleryTargetID),
		h.Input(h.Type("hidden"), h.ID("gallery-category"), h.Name("category"), h.Value(data.Category.Slug())),
		categoryChips(data),
		resultSummary(ctx, data),
		g.If(len(data.Icons) == 0,
			h.P(h.Class("gallery-empty muted"), g.Text(i18n.T(ctx, "gallery.empty"))),
		),
		g.If(len(data.Icons) > 0, IconGrid(data.Icons)),
	)
}

func categoryChips(data GalleryData) g.Node {
	return h.Div(
		h.Class("category-chips"), h.Role("tablist"),
		g.Map(data.Counts, func(cc models.CategoryCount) g.Node {
			active := cc.Category == data.Category
			class := "chip"
			if active {
				class = "chip chip-active"
			}
			return h.A(
				h.Href(landingURL(cc.Slug, data.Query)),
				h.Class(class), h.Role("tab"),
				g.Attr("aria-selected", boolAttr(active)),
				g.Attr("hx-get", galleryURL(cc.Slug, "")),
				g.Attr("hx-include", "#gallery-search"),
				g.Attr("hx-target", "#"+GalleryTargetID),
				g.Attr("hx-swap", "outerHTML"),
				g.Text(string(cc.Category)),
				h.Span(h.Class("chip-count"), g.Text(formatCount(cc.Count))),
			)
		}),
	)
}

func resultSummary(ctx context.Context, data GalleryData) g.Node {
	key := "gallery.results"
	if data.Total == 1 {
		key = "gallery.results_one"
	}
	text := i18n.T(ctx, key, map[string]interface{}{"count": formatCount(data.Total)})
	if len(data.Icons) < data.Total {
		text = i18n.T(ctx, "gallery.showing", map[string]interface{}{
			"shown": formatCount(len(data.Icons)),
			"total": formatCount(data.Total),
		})
	}
	return h.P(h.Class("gallery-summary muted"), g.Attr("aria-live", "polite"), g.Text(text))
}

// IconGrid renders icon tiles; each one links to the icon's page
func IconGrid(icons []IconView) g.Node {
	return h.Div(
		h.Class("icon-grid"),
		g.Map(icons, IconTile),
	)
}

// IconTile renders a single gallery tile
func IconTile(icon IconView) g.Node {
	return h.A(
		h.Href("/icons/"+icon.ID),
		h.Class("icon-tile"),
		g.Attr("title", icon.DisplayName),
		h.Data("icon", icon.ID),
		h.Div(h.Class("icon-tile-glyph"), components.Glyph(icon.Glyph, "icon-lg")),
		h.Span(h.Class("icon-tile-name"), g.Text(icon.DisplayName)),
		g.If(icon.Popular, h.Span(h.Class("icon-tile-badge"), components.Glyph("star", "icon-xs"))),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
