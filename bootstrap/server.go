// ABOUTME: This file runs the liveness HTTP server for external supervisors
// ABOUTME: Static 200s only; it never touches the publish loop's state
package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewLivenessServer builds the echo server with the static endpoints.
func NewLivenessServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "coupon herald alive")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "coupon-herald",
		})
	})

	return e
}

// StartLivenessServer starts the server in its own goroutine. Failures are
// logged, not fatal: the publish loop must outlive a broken health port.
func StartLivenessServer(e *echo.Echo, port int, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("starting liveness server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("liveness server error", "error", err)
		}
	}()
}
