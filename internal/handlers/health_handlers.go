package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessCheck reports readiness, including a database ping.
func ReadinessCheck(c echo.Context, pool *pgxpool.Pool) error {
	if err := pool.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": "down",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "up",
	})
}
