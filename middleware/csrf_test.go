package middleware

import (
	"freevector_app_go/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		expectedToken := "test-csrf-token"
		c.Set("csrf", expectedToken)

		token := GetCSRFToken(c)
		assert.Equal(t, expectedToken, token)
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123) // Not a string

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})
}

func TestCSRFMiddleware(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{Environment: config.EnvDevelopment}
	handler := CSRF(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})

	t.Run("GetIssuesToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		assert.NoError(t, handler(c))
		assert.NotEmpty(t, rec.Body.String())

		found := false
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "_csrf" {
				found = true
				assert.Equal(t, rec.Body.String(), cookie.Value)
			}
		}
		assert.True(t, found)
	})

	t.Run("PostWithoutTokenRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact-sales", strings.NewReader("name=x"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		c := e.NewContext(req, httptest.NewRecorder())
		err := handler(c)
		assert.Error(t, err)
	})

	t.Run("PostWithMatchingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact-sales", strings.NewReader("_csrf=tok123"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(&http.Cookie{Name: "_csrf", Value: "tok123"})
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("APISkipped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/icons", nil)
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))
		assert.Empty(t, rec.Body.String())
	})
}
