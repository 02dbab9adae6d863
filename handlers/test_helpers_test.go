package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"freevector_app_go/config"
	"freevector_app_go/db"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/i18n"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:   config.EnvTest,
		AppURL:        "https://icons.test",
		EmailTestMode: true,
		SalesInbox:    "sales@icons.test",
		ExportDir:     "tmp/test_exports",
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(&models.Plan{}, &models.ContactRequest{})
	require.NoError(t, err)
	require.NoError(t, services.SeedDefaultPlans(testDB))

	// Set global DB
	db.DB = testDB

	i18n.MustLoad()
	services.Storage = services.NewLocalStorage(t.TempDir())
	require.NoError(t, Init(testConfig(), catalog.Default()))

	return testDB
}

// setupServer serves requests through the same middleware stack, route table
// and compression wrapper as the running server
func setupServer(t *testing.T) http.Handler {
	setupTestDB(t)

	server, err := NewServer(testConfig())
	require.NoError(t, err)
	return server.Handler
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

var clientSeq atomic.Uint32

// doRequest serves a request from a fresh client address so the shared rate
// limiters never trip across tests
func doRequest(h http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	n := clientSeq.Add(1)
	req.RemoteAddr = fmt.Sprintf("10.%d.%d.%d:1234", (n>>16)&0xff, (n>>8)&0xff, n&0xff)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}

// csrfHeaders fetches the landing page and returns the cookie and header a
// browser would send with a form post
func csrfHeaders(t *testing.T, h http.Handler) map[string]string {
	t.Helper()
	rec := doRequest(h, http.MethodGet, "/", nil, nil)
	assertStatus(t, rec, http.StatusOK)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "_csrf" {
			require.NotEmpty(t, cookie.Value)
			assert.True(t, strings.Contains(rec.Body.String(), cookie.Value), "token missing from hx-headers")
			return map[string]string{
				"Cookie":       "_csrf=" + cookie.Value,
				"X-CSRF-Token": cookie.Value,
			}
		}
	}
	t.Fatal("no _csrf cookie issued")
	return nil
}
