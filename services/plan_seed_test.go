package services

import (
	"fmt"
	"freevector_app_go/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:mem_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.Plan{}, &models.ContactRequest{})
	return db
}

func TestSeedDefaultPlans(t *testing.T) {
	db := setupSeedTestDB()

	// 1. Initial seed
	err := SeedDefaultPlans(db)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Plan{}).Count(&count)
	assert.Equal(t, int64(3), count) // Free, Professional, Enterprise

	// 2. Test Idempotency
	err = SeedDefaultPlans(db)
	assert.NoError(t, err)
	db.Model(&models.Plan{}).Count(&count)
	assert.Equal(t, int64(3), count)

	// Verify specific plan
	var pro models.Plan
	db.Where("tier = ?", models.PlanTierProfessional).First(&pro)
	assert.Equal(t, "Professional", pro.Name)
	assert.True(t, pro.IsPopular)
	assert.Len(t, pro.Features, 6)
	assert.NotEmpty(t, pro.ID)
}

func TestListActivePlans(t *testing.T) {
	t.Run("Nil database uses defaults", func(t *testing.T) {
		plans := ListActivePlans(nil)
		require.Len(t, plans, 3)
		assert.Equal(t, "Free", plans[0].Name)
	})

	t.Run("Empty table uses defaults", func(t *testing.T) {
		db := setupSeedTestDB()
		plans := ListActivePlans(db)
		assert.Len(t, plans, 3)
	})

	t.Run("Reads seeded plans in display order", func(t *testing.T) {
		db := setupSeedTestDB()
		require.NoError(t, SeedDefaultPlans(db))

		// Deactivate enterprise
		db.Model(&models.Plan{}).Where("tier = ?", models.PlanTierEnterprise).Update("is_active", false)

		plans := ListActivePlans(db)
		require.Len(t, plans, 2)
		assert.Equal(t, models.PlanTierFree, plans[0].Tier)
		assert.Equal(t, models.PlanTierProfessional, plans[1].Tier)
		assert.Equal(t, "Upgrade Now", plans[1].CTAText)
	})

	t.Run("Query error uses defaults", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		// No migration: the plans table does not exist
		plans := ListActivePlans(db)
		assert.Len(t, plans, 3)
	})
}

func TestDefaultPlanPricing(t *testing.T) {
	plans := DefaultPlans()

	assert.Equal(t, "Free", plans[0].FormatPrice(models.BillingYearly))
	assert.Equal(t, "$9", plans[1].FormatPrice(models.BillingYearly))
	assert.Equal(t, "$12", plans[1].FormatPrice(models.BillingMonthly))
	assert.Equal(t, "$49", plans[2].FormatPrice(""))
	assert.Equal(t, "$59", plans[2].FormatPrice(models.BillingMonthly))
	assert.Equal(t, 25, PopularPlanSavings(plans))
}

func TestPopularPlanSavingsWithoutPopular(t *testing.T) {
	plans := DefaultPlans()
	for i := range plans {
		plans[i].IsPopular = false
	}
	// Best remaining discount is Professional's
	assert.Equal(t, 25, PopularPlanSavings(plans))
	assert.Equal(t, 0, PopularPlanSavings(nil))
}
