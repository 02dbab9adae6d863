package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freevector_app_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})

	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "errors.rate_limited", rl.config.MessageKey)
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	now := time.Now()

	ok, _ := rl.allow("a", now)
	assert.True(t, ok)
	ok, _ = rl.allow("a", now.Add(time.Second))
	assert.True(t, ok)

	ok, wait := rl.allow("a", now.Add(10*time.Second))
	assert.False(t, ok)
	assert.Equal(t, 50*time.Second, wait)

	// Other clients have their own window
	ok, _ = rl.allow("b", now.Add(10*time.Second))
	assert.True(t, ok)

	// The window resets once expired
	ok, _ = rl.allow("a", now.Add(time.Minute+time.Second))
	assert.True(t, ok)
}

func TestRateLimiterMiddleware(t *testing.T) {
	i18n.MustLoad()
	e := echo.New()

	serve := func(handler echo.HandlerFunc, ip, locale string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if locale != "" {
			c.Set("locale", locale)
		}
		return rec, handler(c)
	}

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	t.Run("WithinLimit", func(t *testing.T) {
		handler := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute}).Middleware()(ok)
		for i := 0; i < 2; i++ {
			rec, err := serve(handler, "10.0.0.1", "")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		handler := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute}).Middleware()(ok)
		_, err := serve(handler, "10.0.0.1", "")
		require.NoError(t, err)

		rec, err := serve(handler, "10.0.0.1", "")
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.Equal(t, "Too many requests. Please try again later.", he.Message)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("LocalizedMessage", func(t *testing.T) {
		handler := NewRateLimiter(RateLimitConfig{
			Requests:   1,
			Window:     time.Minute,
			MessageKey: "errors.form_rate_limited",
		}).Middleware()(ok)
		_, err := serve(handler, "10.0.0.1", "es")
		require.NoError(t, err)

		_, err = serve(handler, "10.0.0.1", "es")
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Contains(t, he.Message, "Demasiados envíos")
	})

	t.Run("SeparateKeys", func(t *testing.T) {
		handler := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute}).Middleware()(ok)
		for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
			rec, err := serve(handler, ip, "")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
