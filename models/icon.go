package models

// IconCategory is one of the declared gallery categories.
type IconCategory string

// Declared categories, in display order
const (
	CategoryAll           IconCategory = "All" // filter selector only, never a record category
	CategoryUIControls    IconCategory = "UI & Controls"
	CategoryFilesFolders  IconCategory = "Files & Folders"
	CategoryCommunication IconCategory = "Communication"
	CategoryBusiness      IconCategory = "Business"
	CategorySocialMedia   IconCategory = "Social Media"
	CategoryWeather       IconCategory = "Weather"
	CategoryEcommerce     IconCategory = "E-commerce"
	CategoryTravel        IconCategory = "Travel"
	CategoryTechnology    IconCategory = "Technology"
	CategoryMedia         IconCategory = "Media"
	CategoryNavigation    IconCategory = "Navigation"
	CategoryHealth        IconCategory = "Health"
	CategoryGaming        IconCategory = "Gaming"
)

// IconCategories lists every declared category, All first.
var IconCategories = []IconCategory{
	CategoryAll,
	CategoryUIControls,
	CategoryFilesFolders,
	CategoryCommunication,
	CategoryBusiness,
	CategorySocialMedia,
	CategoryWeather,
	CategoryEcommerce,
	CategoryTravel,
	CategoryTechnology,
	CategoryMedia,
	CategoryNavigation,
	CategoryHealth,
	CategoryGaming,
}

// IsDeclared reports whether c belongs to the declared set (All included).
func (c IconCategory) IsDeclared() bool {
	for _, declared := range IconCategories {
		if c == declared {
			return true
		}
	}
	return false
}

// Slug returns a URL-safe form of the category ("UI & Controls" -> "ui-controls")
func (c IconCategory) Slug() string {
	out := make([]byte, 0, len(c))
	dash := false
	for i := 0; i < len(c); i++ {
		ch := c[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out = append(out, ch+('a'-'A'))
			dash = false
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			out = append(out, ch)
			dash = false
		default:
			if !dash && len(out) > 0 {
				out = append(out, '-')
				dash = true
			}
		}
	}
	if len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}

// IconRecord is a single catalog entry. Records are values and are never
// mutated once the catalog is built.
type IconRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Category    IconCategory `json:"category"`
	Tags        []string     `json:"tags"`
	Popular     bool         `json:"popular,omitempty"`
}

// HasTag reports whether the record carries the exact tag
func (r IconRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
