package handlers

import (
	"errors"
	"html"
	"log"
	"net/http"
	"strings"

	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/components"
	"freevector_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler answers API routes with JSON, HTMX requests with an inline
// fragment and everything else with the error page
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}
	if status >= http.StatusInternalServerError {
		log.Printf("[WARNING] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	// Validators set before the failure belong to the success response
	c.Response().Header().Del("ETag")
	c.Response().Header().Set("Cache-Control", "no-store")

	path := c.Request().URL.Path
	var respErr error
	switch {
	case c.Request().Method == http.MethodHead:
		respErr = c.NoContent(status)
	case strings.HasPrefix(path, "/api/"), strings.HasPrefix(path, "/og/"):
		respErr = c.JSON(status, map[string]string{"error": message})
	case isHTMX(c):
		// Leave the requesting element alone and show the alert in the flash area
		c.Response().Header().Set("HX-Retarget", "#"+components.FlashID)
		c.Response().Header().Set("HX-Reswap", "innerHTML")
		respErr = c.HTML(status, `<div class="alert alert-error" role="alert"><span>`+html.EscapeString(message)+`</span></div>`)
	default:
		ctx := c.Request().Context()
		seo := buildSEO(c, "error", i18n.T(ctx, "brand.name"), message, "")
		respErr = render(c, status, pages.ErrorPage(pageMeta(c, seo), status, message))
	}
	if respErr != nil {
		log.Printf("[WARNING] Failed to write error response: %v", respErr)
	}
}
