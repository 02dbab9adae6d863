package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"freevector_app_go/db"
	"freevector_app_go/middleware"
	"freevector_app_go/services"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/pages"
	"freevector_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// ContactSalesHandler stores a custom plan request. HTMX requests get the
// success message or the form with an error in place; plain form posts get
// the landing page back.
func ContactSalesHandler(c echo.Context) error {
	cfg := getConfig(c)
	ctx := c.Request().Context()

	in := services.ContactInput{
		Name:           c.FormValue("name"),
		Email:          c.FormValue("email"),
		Company:        c.FormValue("company"),
		TeamSize:       c.FormValue("team_size"),
		Message:        c.FormValue("message"),
		PlanTier:       c.FormValue("plan_tier"),
		TurnstileToken: c.FormValue("cf-turnstile-response"),
		IPAddress:      c.RealIP(),
		Locale:         middleware.GetLocale(c),
	}

	request, err := services.SubmitContactRequest(c.Request().Context(), db.DB, cfg, in)
	if err != nil {
		status, message := contactError(ctx, err)
		in.TurnstileToken = ""

		if isHTMX(c) {
			// htmx only swaps 2xx responses
			return render(c, http.StatusOK, partials.ContactForm(partials.ContactFormData{
				CSRFToken:        middleware.GetCSRFToken(c),
				TurnstileSiteKey: cfg.TurnstileSiteKey,
				Values:           in,
				Error:            message,
			}))
		}

		data, dataErr := landingData(c, in, message)
		if dataErr != nil {
			return dataErr
		}
		return render(c, status, pages.Landing(data))
	}

	if isHTMX(c) {
		return render(c, http.StatusOK, partials.ContactSuccess(request.Name))
	}

	data, err := landingData(c, services.ContactInput{}, "")
	if err != nil {
		return err
	}
	data.ContactSent = request.Name
	return render(c, http.StatusOK, pages.Landing(data))
}

// contactError maps a submission error to a status and a localized message
func contactError(ctx context.Context, err error) (int, string) {
	var validationErr *services.ContactValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, i18n.T(ctx, validationErr.Key)
	case errors.Is(err, services.ErrTurnstileFailed):
		return http.StatusBadRequest, i18n.T(ctx, "contact.error_captcha")
	default:
		log.Printf("[WARNING] Contact request failed: %v", err)
		return http.StatusInternalServerError, i18n.T(ctx, "contact.error_generic")
	}
}
