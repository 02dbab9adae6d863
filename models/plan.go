package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan tier constants
const (
	PlanTierFree         = "free"
	PlanTierProfessional = "professional"
	PlanTierEnterprise   = "enterprise"
)

// Billing periods accepted by the pricing toggle
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

// Plan is a pricing tier shown on the landing page. Plans are display-only;
// there is no checkout behind them.
type Plan struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Plan identification
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Tier        string `gorm:"not null;index" json:"tier"`
	Description string `gorm:"type:text" json:"description"`

	// Pricing in cents per month (yearly = monthly equivalent when billed yearly)
	PriceMonthly int `gorm:"not null;default:0" json:"price_monthly"`
	PriceYearly  int `gorm:"not null;default:0" json:"price_yearly"`

	Features []string `gorm:"serializer:json" json:"features"`
	CTAText  string   `gorm:"not null" json:"cta_text"`

	// Status
	IsPopular    bool `gorm:"not null;default:false" json:"is_popular"`
	IsActive     bool `gorm:"not null;default:true" json:"is_active"`
	DisplayOrder int  `gorm:"not null;default:0" json:"display_order"`
}

// BeforeCreate hook to generate UUID
func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Plan) TableName() string {
	return "plans"
}

// NormalizeBilling maps any input to a supported billing period, yearly by default
func NormalizeBilling(billing string) string {
	if billing == BillingMonthly {
		return BillingMonthly
	}
	return BillingYearly
}

// IsFree checks if the plan costs nothing on either billing period
func (p *Plan) IsFree() bool {
	return p.PriceMonthly == 0 && p.PriceYearly == 0
}

// PriceFor returns the per-month price in cents for the billing period
func (p *Plan) PriceFor(billing string) int {
	if NormalizeBilling(billing) == BillingMonthly {
		return p.PriceMonthly
	}
	return p.PriceYearly
}

// FormatPrice returns the display price ("Free", "$9") for the billing period
func (p *Plan) FormatPrice(billing string) string {
	cents := p.PriceFor(billing)
	if cents == 0 {
		return "Free"
	}
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// YearlySavingsPercent returns the rounded discount of yearly over monthly billing
func (p *Plan) YearlySavingsPercent() int {
	if p.PriceMonthly <= 0 || p.PriceYearly >= p.PriceMonthly {
		return 0
	}
	saved := p.PriceMonthly - p.PriceYearly
	return (saved*100 + p.PriceMonthly/2) / p.PriceMonthly
}
