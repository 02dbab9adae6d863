package services

import (
	"context"
	"freevector_app_go/models"
	"freevector_app_go/services/i18n"
)

// featureKeys pairs each feature card with its glyph, in display order
var featureKeys = []struct {
	key   string
	glyph string
}{
	{"precision", "pen-line"},
	{"colors", "palette"},
	{"shapes", "file-pen-line"},
	{"scaling", "maximize-2"},
	{"formats", "download"},
	{"library", "layers"},
}

// LandingFeatures returns the six feature cards in the request locale
func LandingFeatures(ctx context.Context) []models.Feature {
	out := make([]models.Feature, 0, len(featureKeys))
	for _, f := range featureKeys {
		out = append(out, models.Feature{
			Icon:        f.glyph,
			Title:       i18n.T(ctx, "features."+f.key+".title"),
			Description: i18n.T(ctx, "features."+f.key+".description"),
		})
	}
	return out
}

// Quotes are shown as written, in every locale.
var testimonials = []models.Testimonial{
	{
		Quote:   "These vector icons have elevated the design of our mobile app. The clean lines and flexibility made customization a breeze.",
		Author:  "Alex Morgan",
		Role:    "UI Designer",
		Company: "DesignHub",
		Rating:  5,
	},
	{
		Quote:   "The icon library saved us countless hours. We were able to find every icon we needed for our dashboard redesign in one place.",
		Author:  "Jamie Chen",
		Role:    "Product Manager",
		Company: "TechFlow",
		Rating:  5,
	},
	{
		Quote:   "As a freelancer, having access to such a comprehensive library of professionally designed icons has been invaluable for my client work.",
		Author:  "Sarah Johnson",
		Role:    "Freelance Designer",
		Company: "Studio Creative",
		Rating:  4,
	},
	{
		Quote:   "The customization options for these icons are outstanding. We could easily adapt them to match our brand colors and style.",
		Author:  "Michael Torres",
		Role:    "Creative Director",
		Company: "Artistry Digital",
		Rating:  5,
	},
	{
		Quote:   "I've tried many icon libraries, but this one stands out for its consistency and attention to detail across all categories.",
		Author:  "Emily Parker",
		Role:    "UX Researcher",
		Company: "InnovateUX",
		Rating:  4,
	},
	{
		Quote:   "These vector icons integrate perfectly with our design system. The clean, minimal style works beautifully across all our products.",
		Author:  "David Wilson",
		Role:    "Design Systems Lead",
		Company: "TechGiant",
		Rating:  5,
	},
}

// Testimonials returns the customer quotes in display order
func Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// NavLinks returns the in-page navigation anchors in the request locale
func NavLinks(ctx context.Context) []models.NavLink {
	return []models.NavLink{
		{Href: "#icons", Label: i18n.T(ctx, "nav.icons")},
		{Href: "#features", Label: i18n.T(ctx, "nav.features")},
		{Href: "#testimonials", Label: i18n.T(ctx, "nav.testimonials")},
		{Href: "#pricing", Label: i18n.T(ctx, "nav.pricing")},
	}
}

// HeroChecks returns the four reassurance check marks under the hero CTAs
func HeroChecks(ctx context.Context) []string {
	return []string{
		i18n.T(ctx, "hero.check_royalty_free"),
		i18n.T(ctx, "hero.check_customizable"),
		i18n.T(ctx, "hero.check_commercial"),
		i18n.T(ctx, "hero.check_formats"),
	}
}
