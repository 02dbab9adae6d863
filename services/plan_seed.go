package services

import (
	"fmt"
	"freevector_app_go/models"
	"log"
	"sort"

	"gorm.io/gorm"
)

// DefaultPlans returns the built-in pricing plans in display order. It is the
// seed source and the fallback when the database cannot be read.
func DefaultPlans() []models.Plan {
	return []models.Plan{
		{
			Name:         "Free",
			Tier:         models.PlanTierFree,
			Description:  "Perfect for personal projects and exploring our collection.",
			PriceMonthly: 0,
			PriceYearly:  0,
			Features: []string{
				"Access to 1,000+ free icons",
				"PNG downloads",
				"Basic customization",
				"Personal use only",
				"Standard resolution",
			},
			CTAText:      "Get Started Free",
			IsActive:     true,
			DisplayOrder: 0,
		},
		{
			Name:         "Professional",
			Tier:         models.PlanTierProfessional,
			Description:  "For professional designers and small teams.",
			PriceMonthly: 1200, // $12/month
			PriceYearly:  900,  // $9/month billed yearly
			Features: []string{
				"Access to all 10,000+ icons",
				"SVG & PNG downloads",
				"Advanced customization",
				"Commercial use license",
				"Priority support",
				"Unlimited projects",
			},
			CTAText:      "Upgrade Now",
			IsPopular:    true,
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Name:         "Enterprise",
			Tier:         models.PlanTierEnterprise,
			Description:  "For organizations needing advanced features and support.",
			PriceMonthly: 5900, // $59/month
			PriceYearly:  4900, // $49/month billed yearly
			Features: []string{
				"Everything in Professional",
				"Team collaboration tools",
				"API access",
				"Custom icon requests",
				"Dedicated support",
				"Extended commercial license",
				"Bulk export options",
			},
			CTAText:      "Contact Sales",
			IsActive:     true,
			DisplayOrder: 2,
		},
	}
}

// SeedDefaultPlans creates the default pricing plans
func SeedDefaultPlans(db *gorm.DB) error {
	for _, plan := range DefaultPlans() {
		var existing models.Plan
		if err := db.Where("tier = ?", plan.Tier).First(&existing).Error; err == nil {
			log.Printf("[SEED] Plan %s already exists, skipping", plan.Name)
			continue
		}

		if err := db.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to create plan %s: %w", plan.Name, err)
		}
		log.Printf("[SEED] Created plan: %s", plan.Name)
	}

	return nil
}

// ListActivePlans returns active plans ordered for display. A nil database, a
// query error or an empty table all fall back to DefaultPlans.
func ListActivePlans(db *gorm.DB) []models.Plan {
	if db == nil {
		return DefaultPlans()
	}

	var plans []models.Plan
	if err := db.Where("is_active = ?", true).Order("display_order ASC").Find(&plans).Error; err != nil {
		log.Printf("[WARNING] Failed to load plans, using defaults: %v", err)
		return DefaultPlans()
	}
	if len(plans) == 0 {
		return DefaultPlans()
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].DisplayOrder < plans[j].DisplayOrder
	})
	return plans
}

// PopularPlanSavings returns the yearly discount advertised on the billing
// toggle, taken from the popular plan.
func PopularPlanSavings(plans []models.Plan) int {
	best := 0
	for i := range plans {
		if plans[i].IsPopular {
			return plans[i].YearlySavingsPercent()
		}
		if s := plans[i].YearlySavingsPercent(); s > best {
			best = s
		}
	}
	return best
}
