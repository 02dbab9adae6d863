package jobs

import (
	"context"
	"freevector_app_go/config"
	"freevector_app_go/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Schedules, in UTC
const (
	WarmExportsSchedule          = "0 3 * * *"
	ContactNotificationsSchedule = "*/30 * * * *"
)

// StartScheduler registers the background jobs and starts the cron runner.
// Stop the returned runner on shutdown.
func StartScheduler(ctx context.Context, database *gorm.DB, cfg *config.Config, exporter *services.Exporter) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	if exporter != nil {
		if _, err := c.AddFunc(WarmExportsSchedule, func() {
			log.Println("[CRON] Warming catalog exports...")
			WarmExports(ctx, exporter)
		}); err != nil {
			return nil, err
		}
	}

	if _, err := c.AddFunc(ContactNotificationsSchedule, func() {
		RetryContactNotifications(database, cfg)
	}); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[CRON] Scheduler started with %d jobs", len(c.Entries()))
	return c, nil
}
