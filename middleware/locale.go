package middleware

import (
	"freevector_app_go/config"
	"freevector_app_go/services/i18n"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const langCookieName = "lang"

// Locale picks the page language from, in order: the "lang" query parameter
// (remembered in a cookie), the "lang" cookie, the Accept-Language header.
// Unsupported values fall through to English.
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = i18n.Supported()[0]
				}
				setLanguageCookie(c, lang, cfg.IsProduction())
			} else if cookie, err := c.Cookie(langCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = i18n.MatchAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set("locale", lang)
			c.Response().Header().Add("Vary", "Accept-Language")
			c.Response().Header().Set("Content-Language", lang)

			// Request context for the views
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))

			return next(c)
		}
	}
}

func setLanguageCookie(c echo.Context, lang string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     langCookieName,
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour), // 1 year
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	val := c.Get("locale")
	if lang, ok := val.(string); ok {
		return lang
	}
	return "en"
}
