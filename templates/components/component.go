package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Build adapts a gomponents tree that needs the request context (locale,
// CSP nonce) into a templ.Component, which is what handlers render.
func Build(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Glyph renders a Lucide icon placeholder; the Lucide script swaps in the SVG
func Glyph(name, class string) g.Node {
	return g.El("i", g.Attr("data-lucide", name), g.Attr("class", class), g.Attr("aria-hidden", "true"))
}
