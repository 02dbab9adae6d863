package services

import (
	"context"
	"errors"
	"fmt"
	"freevector_app_go/config"
	"freevector_app_go/models"
	"html"
	"log"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// MaxContactMessageLength caps the custom plan message, in characters
const MaxContactMessageLength = 2000

// ErrInvalidContactRequest is the sentinel for every contact form validation failure
var ErrInvalidContactRequest = errors.New("invalid contact request")

// ContactValidationError names the offending field and the i18n key describing it
type ContactValidationError struct {
	Field string
	Key   string
}

func (e *ContactValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidContactRequest, e.Field)
}

func (e *ContactValidationError) Unwrap() error {
	return ErrInvalidContactRequest
}

// ContactInput is the raw contact sales form
type ContactInput struct {
	Name           string
	Email          string
	Company        string
	TeamSize       string
	Message        string
	PlanTier       string
	TurnstileToken string
	IPAddress      string
	Locale         string
}

var contactPolicy = bluemonday.StrictPolicy()

// sanitizeContactInput trims every field and strips all markup. Entities are
// unescaped again since the views escape on output.
func sanitizeContactInput(in ContactInput) ContactInput {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(contactPolicy.Sanitize(strings.TrimSpace(s))))
	}
	in.Name = clean(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Company = clean(in.Company)
	in.TeamSize = strings.TrimSpace(in.TeamSize)
	in.Message = clean(in.Message)
	in.PlanTier = strings.ToLower(strings.TrimSpace(in.PlanTier))
	return in
}

// ValidateContactInput checks a sanitized form
func ValidateContactInput(in ContactInput) error {
	if in.Name == "" {
		return &ContactValidationError{Field: "name", Key: "contact.error_required"}
	}
	if in.Email == "" {
		return &ContactValidationError{Field: "email", Key: "contact.error_required"}
	}
	if in.Message == "" {
		return &ContactValidationError{Field: "message", Key: "contact.error_required"}
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email || !strings.Contains(in.Email[strings.LastIndex(in.Email, "@"):], ".") {
		return &ContactValidationError{Field: "email", Key: "contact.error_email"}
	}
	if utf8.RuneCountInString(in.Message) > MaxContactMessageLength {
		return &ContactValidationError{Field: "message", Key: "contact.error_message_length"}
	}
	if !models.IsValidTeamSize(in.TeamSize) {
		return &ContactValidationError{Field: "team_size", Key: "contact.error_team_size"}
	}
	switch in.PlanTier {
	case "", models.PlanTierFree, models.PlanTierProfessional, models.PlanTierEnterprise:
	default:
		return &ContactValidationError{Field: "plan_tier", Key: "contact.error_required"}
	}
	return nil
}

// SubmitContactRequest sanitizes, validates and stores a contact sales request,
// then notifies the sales inbox and the requester. Email failures are logged
// and leave NotifiedAt unset; they never fail the submission.
func SubmitContactRequest(ctx context.Context, db *gorm.DB, cfg *config.Config, in ContactInput) (*models.ContactRequest, error) {
	if cfg.TurnstileEnabled() {
		if err := NewTurnstileVerifier(cfg).Verify(ctx, in.TurnstileToken, in.IPAddress); err != nil {
			log.Printf("[WARNING] Turnstile verification failed for contact request from %s: %v", in.IPAddress, err)
			return nil, ErrTurnstileFailed
		}
	}

	in = sanitizeContactInput(in)
	if err := ValidateContactInput(in); err != nil {
		return nil, err
	}

	locale := in.Locale
	if locale == "" {
		locale = "en"
	}

	request := &models.ContactRequest{
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		TeamSize:  in.TeamSize,
		Message:   in.Message,
		PlanTier:  in.PlanTier,
		Locale:    locale,
		IPAddress: in.IPAddress,
	}
	if err := db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact request: %w", err)
	}
	log.Printf("[INFO] Contact request %s received from %s", request.ID, request.Email)

	if NotifyContactRequest(cfg, request) {
		now := time.Now()
		if err := db.Model(request).Update("notified_at", now).Error; err != nil {
			log.Printf("[WARNING] Failed to mark contact request %s notified: %v", request.ID, err)
		} else {
			request.NotifiedAt = &now
		}
	}

	return request, nil
}

// NotifyContactRequest emails the sales inbox and acknowledges the requester.
// It reports whether the sales inbox accepted the notification.
func NotifyContactRequest(cfg *config.Config, request *models.ContactRequest) bool {
	if cfg.SalesInbox == "" {
		log.Printf("[WARNING] SALES_INBOX not configured, contact request %s not forwarded", request.ID)
		return false
	}

	// The sales team reads English
	notification := BuildSalesNotificationEmail(cfg.SalesInbox, SalesNotificationEmailData{
		RequestID: request.ID,
		Name:      request.Name,
		Email:     request.Email,
		Company:   request.Company,
		TeamSize:  request.TeamSize,
		PlanTier:  request.PlanTier,
		Locale:    request.Locale,
		Message:   request.Message,
	}, "en")
	if err := SendEmail(cfg, notification); err != nil {
		log.Printf("[WARNING] Failed to notify sales about contact request %s: %v", request.ID, err)
		return false
	}

	ack := BuildContactAcknowledgementEmail(request.Email, ContactAcknowledgementEmailData{
		Name:    request.Name,
		Message: request.Message,
		AppURL:  cfg.AppURL,
	}, request.Locale)
	if err := SendEmail(cfg, ack); err != nil {
		log.Printf("[WARNING] Failed to acknowledge contact request %s: %v", request.ID, err)
	}
	return true
}

// ErrInvalidContactStatus is returned for a status outside models.ContactStatuses
var ErrInvalidContactStatus = errors.New("invalid contact request status")

// ListContactRequests returns requests newest first, optionally filtered by
// status. A limit <= 0 returns every match.
func ListContactRequests(db *gorm.DB, status string, limit int) ([]models.ContactRequest, error) {
	query := db.Order("created_at DESC")
	if status != "" {
		if !models.IsValidContactStatus(status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidContactStatus, status)
		}
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var requests []models.ContactRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return requests, nil
}

// UpdateContactRequestStatus moves the given requests to status and returns
// how many rows changed.
func UpdateContactRequestStatus(db *gorm.DB, ids []string, status string) (int64, error) {
	if !models.IsValidContactStatus(status) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidContactStatus, status)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Model(&models.ContactRequest{}).Where("id IN ?", ids).Update("status", status)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update contact requests: %w", result.Error)
	}
	return result.RowsAffected, nil
}
