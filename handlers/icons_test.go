package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"freevector_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	e := setupServer(t)

	t.Run("RendersAllSections", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		body := rec.Body.String()

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		for _, id := range []string{"hero", "features", "icons", "popular", "testimonials", "pricing"} {
			assert.Contains(t, body, `id="`+id+`"`)
		}
		assert.Contains(t, body, "Showing 24 of 75")
		assert.Contains(t, body, "Professional")
		assert.Contains(t, body, `<link rel="canonical" href="https://icons.test/">`)
	})

	t.Run("GalleryFromQuery", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/?category=weather", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), "6 icons")
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/?category=Bogus", nil, nil)
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), "invalid category")
	})
}

func TestGalleryHTMX(t *testing.T) {
	e := setupServer(t)
	htmx := map[string]string{"HX-Request": "true"}

	tests := []struct {
		name     string
		path     string
		status   int
		contains []string
		excludes []string
	}{
		{
			name:     "WeatherInOrder",
			path:     "/htmx/icons?category=weather",
			status:   http.StatusOK,
			contains: []string{`data-icon="sun"`, `data-icon="zap"`, "6 icons"},
			excludes: []string{`data-icon="home"`},
		},
		{
			name:     "QueryAcrossCatalog",
			path:     "/htmx/icons?q=down",
			status:   http.StatusOK,
			contains: []string{`data-icon="download"`, `data-icon="arrow-down"`, "2 icons"},
		},
		{
			name:     "CategoryAndQuery",
			path:     "/htmx/icons?category=Technology&q=chip",
			status:   http.StatusOK,
			contains: []string{`data-icon="cpu"`, "1 icon<"},
		},
		{
			name:     "NoMatches",
			path:     "/htmx/icons?category=gaming&q=xyz",
			status:   http.StatusOK,
			contains: []string{"No icons match your search."},
		},
		{
			name:     "InvalidCategoryFragment",
			path:     "/htmx/icons?category=Bogus",
			status:   http.StatusBadRequest,
			contains: []string{`class="alert alert-error"`},
			excludes: []string{"<html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodGet, tt.path, nil, htmx)
			assertStatus(t, rec, tt.status)
			body := rec.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, body, s)
			}
		})
	}

	t.Run("ErrorsSwapIntoFlash", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/htmx/icons?category=Bogus", nil, htmx)
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "#flash", rec.Header().Get("HX-Retarget"))
		assert.Equal(t, "innerHTML", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), "Bogus")
	})

	t.Run("TruncatesToDisplayLimit", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/htmx/icons", nil, htmx)
		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, 24, strings.Count(rec.Body.String(), `class="icon-tile"`))
	})
}

func TestIconsPageHandler(t *testing.T) {
	e := setupServer(t)

	t.Run("FirstPage", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/icons", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, IconsPerPage, strings.Count(rec.Body.String(), `class="icon-tile"`))
		assert.Contains(t, rec.Body.String(), "Page 1 of 2")
	})

	t.Run("LastPage", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/icons?page=2", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, 75-IconsPerPage, strings.Count(rec.Body.String(), `class="icon-tile"`))
	})

	t.Run("PagePastEndClamps", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/icons?category=weather&page=9", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, 6, strings.Count(rec.Body.String(), `class="icon-tile"`))
	})

	t.Run("InvalidPage", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/icons?page=zero", nil, nil)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestIconDetailHandler(t *testing.T) {
	e := setupServer(t)

	t.Run("Found", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/icons/sun", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		body := rec.Body.String()
		assert.Contains(t, body, `data-lucide="sun"`)
		assert.Contains(t, body, `data-icon="moon"`)
		assert.NotContains(t, body, `data-icon="sun"`)
		assert.Contains(t, body, "https://icons.test/og/weather.png")
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/icons/nope", nil, nil)
		assertStatus(t, rec, http.StatusNotFound)
		assert.Contains(t, rec.Body.String(), "Icon not found.")
	})
}

func TestIconsAPI(t *testing.T) {
	e := setupServer(t)

	decode := func(t *testing.T, body []byte) IconListResponse {
		var resp IconListResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		return resp
	}

	t.Run("DefaultsToDisplayLimit", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		resp := decode(t, rec.Body.Bytes())
		assert.Len(t, resp.Data, 24)
		assert.Equal(t, 75, resp.Total)
		assert.Equal(t, "home", resp.Data[0].ID)
		assert.Equal(t, models.CategoryAll, resp.Category)
	})

	t.Run("FilterAndNormalize", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons?category=Weather&q=%20%20SUN%20", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		resp := decode(t, rec.Body.Bytes())
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "sun", resp.Data[0].ID)
		assert.Equal(t, "sun", resp.Query)
	})

	t.Run("Paging", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons?limit=10&offset=70", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		resp := decode(t, rec.Body.Bytes())
		assert.Len(t, resp.Data, 5)

		rec = doRequest(e, http.MethodGet, "/api/icons?offset=500", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		assert.Empty(t, decode(t, rec.Body.Bytes()).Data)

		rec = doRequest(e, http.MethodGet, "/api/icons?limit=1000", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		assert.Len(t, decode(t, rec.Body.Bytes()).Data, 75)
	})

	t.Run("BadParams", func(t *testing.T) {
		for _, path := range []string{"/api/icons?category=Bogus", "/api/icons?limit=0", "/api/icons?offset=-1", "/api/icons?limit=abc"} {
			rec := doRequest(e, http.MethodGet, path, nil, nil)
			assertStatus(t, rec, http.StatusBadRequest)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		}
	})

	t.Run("ETagRevalidation", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons?category=weather", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		etag := rec.Header().Get("ETag")
		require.NotEmpty(t, etag)

		// Equivalent query, same validator
		rec = doRequest(e, http.MethodGet, "/api/icons?category=Weather", nil, map[string]string{"If-None-Match": etag})
		assertStatus(t, rec, http.StatusNotModified)
		assert.Empty(t, rec.Body.String())

		rec = doRequest(e, http.MethodGet, "/api/icons?category=media", nil, map[string]string{"If-None-Match": etag})
		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("Popular", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons/popular", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		var resp struct {
			Data  []models.IconRecord `json:"data"`
			Total int                 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, len(Catalog.PopularIcons()), resp.Total)
		for _, icon := range resp.Data {
			assert.True(t, icon.Popular)
		}
	})

	t.Run("Categories", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons/categories", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		var resp struct {
			Data []models.CategoryCount `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, len(models.IconCategories))
		assert.Equal(t, models.CategoryAll, resp.Data[0].Category)
		assert.Equal(t, 75, resp.Data[0].Count)
	})

	t.Run("SingleIcon", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/icons/cpu", nil, nil)
		assertStatus(t, rec, http.StatusOK)
		var icon models.IconRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &icon))
		assert.Equal(t, models.CategoryTechnology, icon.Category)

		rec = doRequest(e, http.MethodGet, "/api/icons/nope", nil, nil)
		assertStatus(t, rec, http.StatusNotFound)
	})
}
