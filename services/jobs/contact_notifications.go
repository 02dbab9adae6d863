package jobs

import (
	"freevector_app_go/config"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"log"
	"time"

	"gorm.io/gorm"
)

// notificationRetryWindow bounds how far back undelivered requests are retried
const notificationRetryWindow = 7 * 24 * time.Hour

// RetryContactNotifications resends the sales notification for new contact
// requests whose first delivery failed. It returns how many were delivered.
func RetryContactNotifications(database *gorm.DB, cfg *config.Config) int {
	since := time.Now().UTC().Add(-notificationRetryWindow)

	var requests []models.ContactRequest
	err := database.
		Where("status = ?", models.ContactStatusNew).
		Where("notified_at IS NULL").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		log.Printf("[JOB] Error fetching pending contact requests: %v", err)
		return 0
	}
	if len(requests) == 0 {
		return 0
	}

	log.Printf("[JOB] Found %d contact requests pending notification", len(requests))

	delivered := 0
	for i := range requests {
		request := &requests[i]
		if !services.NotifyContactRequest(cfg, request) {
			continue
		}
		now := time.Now().UTC()
		if err := database.Model(request).Update("notified_at", now).Error; err != nil {
			log.Printf("[JOB] Failed to mark contact request %s notified: %v", request.ID, err)
			continue
		}
		delivered++
	}

	log.Printf("[JOB] Delivered %d/%d pending contact notifications", delivered, len(requests))
	return delivered
}
