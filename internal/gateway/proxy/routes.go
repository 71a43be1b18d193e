package proxy

import "github.com/gofiber/fiber/v3"

// ============================================================
// Service Routes
// ============================================================

// Register mounts the public API on api, whose full path is prefix
// (for example "/api/v1"), forwarding each route to its service.
func (p *Proxy) Register(api fiber.Router, prefix, advisorURL, layoutsURL string) {
	// Placement Advisor
	advisor := p.Mount(prefix, advisorURL)
	api.Get("/catalog", advisor)
	api.Get("/catalog/:id", advisor)
	api.Post("/suggest", advisor)
	api.Post("/suggest/batch", advisor)
	api.Post("/validate", advisor)
	api.Post("/best", advisor)
	api.Post("/arrange", advisor)
	api.Post("/floorplan/room", advisor)
	api.Post("/export", advisor)

	// Layouts Service
	layouts := p.Mount(prefix, layoutsURL)
	api.Post("/layouts", layouts)
	api.Get("/layouts", layouts)
	api.Get("/layouts/:id", layouts)
	api.Delete("/layouts/:id", layouts)
	api.Post("/layouts/:id/items", layouts)
	api.Delete("/layouts/:id/items/:itemId", layouts)
	api.Get("/layouts/:id/suggest", layouts)
	api.Get("/layouts/:id/planner", layouts)
}
