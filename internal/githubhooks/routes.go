// Package githubhooks exposes handlers for GitHub webhook callbacks.
package githubhooks

import "github.com/gofiber/fiber/v3"

// Routes wires the content repository webhook under /api.
func Routes(app fiber.Router, h *ContentHandler) {
	// POST /api/sync-content receives push notifications from the content repository.
	app.Post("/sync-content", h.SyncContent)
}
