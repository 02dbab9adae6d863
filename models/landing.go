package models

// Feature is a card in the features grid
type Feature struct {
	Icon        string // glyph name
	Title       string
	Description string
}

// Testimonial is a customer quote with a 1-5 star rating
type Testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
	Rating  int
}

// Initials returns up to two uppercase initials for the avatar bubble
func (t Testimonial) Initials() string {
	out := make([]rune, 0, 2)
	start := true
	for _, r := range t.Author {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
			if len(out) == 2 {
				break
			}
			start = false
		}
	}
	return string(out)
}

// NavLink is an in-page anchor in the navigation bar
type NavLink struct {
	Href  string
	Label string
}

// CategoryCount pairs a category with its number of records
type CategoryCount struct {
	Category IconCategory `json:"name"`
	Slug     string       `json:"slug"`
	Count    int          `json:"count"`
}
