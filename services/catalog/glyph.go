package catalog

const defaultGlyph = "shapes"

// Record ids are Lucide glyph names; these are the ones Lucide has since renamed.
var glyphOverrides = map[string]string{
	"home":      "house",
	"pie-chart": "chart-pie",
}

// GlyphName returns the Lucide glyph that draws an icon id. The bool is false
// when the id is not in the catalog.
func (s *Store) GlyphName(id string) (string, bool) {
	if _, ok := s.byID[id]; !ok {
		return "", false
	}
	if name, ok := glyphOverrides[id]; ok {
		return name, true
	}
	return id, true
}

// GlyphNameOrDefault provides a stable glyph even for unknown ids
func (s *Store) GlyphNameOrDefault(id string) string {
	if name, ok := s.GlyphName(id); ok {
		return name
	}
	return defaultGlyph
}
