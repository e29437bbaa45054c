package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/court-monitor/scraper/internal/scraper"
)

// SetupRoutes registers the status endpoints on the fiber app.
func SetupRoutes(app *fiber.App, progress *scraper.Progress) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"running": progress.Snapshot().Running,
		})
	})

	app.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(progress.Snapshot())
	})
}
