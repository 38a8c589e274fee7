package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Interview *InterviewHandler
	Job       *JobHandler
	Credit    *CreditHandler
}

// Register mounts every route under /api/v1. Everything except the health
// check requires an owner.
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	owned := api.Group("", RequireOwner())

	owned.Post("/interviews", h.Interview.HandleGenerate)
	owned.Get("/interviews/:id", h.Interview.HandleGet)
	owned.Get("/interviews/:id/feedback", h.Interview.HandleFeedback)

	owned.Post("/jobs", h.Job.HandleCreate)
	owned.Post("/jobs/import", h.Job.HandleImport)

	owned.Get("/credits", h.Credit.HandleGetCredits)
}
