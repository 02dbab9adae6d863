package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestTracing(t *testing.T) {
	e := echo.New()

	t.Run("PassesContextToHandler", func(t *testing.T) {
		var sawSpan bool
		handler := Tracing()(func(c echo.Context) error {
			sawSpan = trace.SpanFromContext(c.Request().Context()) != nil
			return c.String(http.StatusOK, "ok")
		})

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/icons", nil), rec)
		assert.NoError(t, handler(c))
		assert.True(t, sawSpan)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("HandlesErrors", func(t *testing.T) {
		handler := Tracing()(func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("bad category").Error())
		})

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/htmx/icons?category=x", nil), rec)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
