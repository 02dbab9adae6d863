package pages

import (
	"freevector_app_go/models"
	"freevector_app_go/templates/components"
	"freevector_app_go/templates/partials"
)

// LandingData holds everything the landing page renders
type LandingData struct {
	Meta         components.PageMeta
	HeroChecks   []string
	Features     []models.Feature
	Gallery      partials.GalleryData
	Popular      []partials.IconView
	Testimonials []models.Testimonial
	Plans        []models.Plan
	Billing      string
	Savings      int // yearly discount of the popular plan, in percent
	Contact      partials.ContactFormData
	ContactSent  string // requester name once the contact form went through
}

// IconsPageData is one page of the full gallery
type IconsPageData struct {
	Meta    components.PageMeta
	Gallery partials.GalleryData
	Page    int
	Pages   int
}

// IconDetailData is the page of a single icon
type IconDetailData struct {
	Meta    components.PageMeta
	Icon    partials.IconView
	Related []partials.IconView
}
