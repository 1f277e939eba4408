package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber app with the standard middleware chain and all
// routes registered.
func NewApp(h *Handler, corsOrigins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ai-resume-builder",
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Post("/generate-pdf", h.GeneratePDF)
	api.Post("/generate-summary", h.GenerateSummary)

	api.Post("/resumes", h.CreateResume)
	api.Get("/resumes", h.ListResumes)
	api.Get("/resumes/:id", h.GetResume)
	api.Put("/resumes/:id", h.UpdateResume)
	api.Delete("/resumes/:id", h.DeleteResume)

	return app
}
