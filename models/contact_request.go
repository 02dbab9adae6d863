package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact request status
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusClosed    = "closed"
)

// ContactStatuses lists the valid status values in workflow order
var ContactStatuses = []string{ContactStatusNew, ContactStatusContacted, ContactStatusClosed}

// IsValidContactStatus checks a status against ContactStatuses
func IsValidContactStatus(status string) bool {
	for _, s := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Team size buckets offered by the custom plan form
var TeamSizes = []string{"1-5", "6-20", "21-100", "100+"}

// ContactRequest is a "Need a custom plan?" submission from the pricing section.
type ContactRequest struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null;index" json:"email"`
	Company  string `json:"company,omitempty"`
	TeamSize string `json:"team_size,omitempty"`
	Message  string `gorm:"type:text;not null" json:"message"`
	PlanTier string `gorm:"index" json:"plan_tier,omitempty"`

	Status    string `gorm:"not null;default:new;index" json:"status"`
	Locale    string `gorm:"not null;default:en" json:"locale"`
	IPAddress string `json:"-"`

	NotifiedAt *time.Time `json:"notified_at,omitempty"`
}

// BeforeCreate hook to generate UUID and default status
func (r *ContactRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = ContactStatusNew
	}
	return nil
}

// TableName specifies the table name
func (ContactRequest) TableName() string {
	return "contact_requests"
}

// IsValidTeamSize checks the team size against the offered buckets (empty allowed)
func IsValidTeamSize(size string) bool {
	if size == "" {
		return true
	}
	for _, s := range TeamSizes {
		if s == size {
			return true
		}
	}
	return false
}
