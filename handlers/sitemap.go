package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap: static pages, one page per
// category and one per icon
func GetSitemapHandler(c echo.Context) error {
	baseURL := getConfig(c).AppURL

	// Static pages
	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/icons", ChangeFreq: "weekly", Priority: 0.9},
	}

	for _, category := range Catalog.Categories()[1:] {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/icons?category=" + category.Slug(),
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}

	for _, icon := range Catalog.AllIcons() {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/icons/" + icon.ID,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler serves robots.txt pointing crawlers at the sitemap
func RobotsHandler(c echo.Context) error {
	cfg := getConfig(c)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if cfg.IsProduction() {
		b.WriteString("Disallow: /htmx/\nDisallow: /api/\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	b.WriteString("\nSitemap: " + cfg.AppURL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}
