package partials

import (
	"net/url"
	"strconv"
)

// galleryURL builds the HTMX gallery endpoint for a category slug and query
func galleryURL(slug, query string) string {
	v := url.Values{}
	if slug != "" {
		v.Set("category", slug)
	}
	if query != "" {
		v.Set("q", query)
	}
	if len(v) == 0 {
		return "/htmx/icons"
	}
	return "/htmx/icons?" + v.Encode()
}

// landingURL is the no-JavaScript fallback for a gallery chip
func landingURL(slug, query string) string {
	v := url.Values{}
	if slug != "" {
		v.Set("category", slug)
	}
	if query != "" {
		v.Set("q", query)
	}
	if len(v) == 0 {
		return "/#icons"
	}
	return "/?" + v.Encode() + "#icons"
}

// formatCount renders large counts with thousands separators
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 1000 && n > -1000 {
		return s
	}
	neg := n < 0
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
