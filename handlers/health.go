package handlers

import (
	"context"
	"net/http"
	"time"

	"freevector_app_go/db"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the catalog is loaded and the database answers
func HealthHandler(c echo.Context) error {
	status := map[string]interface{}{
		"status":  "ok",
		"icons":   Catalog.Len(),
		"catalog": Catalog.Fingerprint(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
