package api

import (
	"github.com/gofiber/fiber/v2"

	"os-simulator/config"
	"os-simulator/internal/memory"
)

// NewApp wires the scheduling and memory routes under /api/v1.
func NewApp(config *config.SimulatorConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	scheduler := NewSchedulerHandlerImpl(config)
	mem := NewMemoryHandlerImpl(config, memory.NewSessions())

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/schedule", scheduler.AllAlgorithms)
		v1.Post("/schedule/:algorithm", scheduler.Schedule)

		v1.Post("/memory", mem.Create)
		v1.Get("/memory/:id", mem.Get)
		v1.Put("/memory/:id", mem.Reinitialize)
		v1.Delete("/memory/:id", mem.Delete)
		v1.Post("/memory/:id/allocate", mem.Allocate)
		v1.Delete("/memory/:id/allocations/:pid", mem.Deallocate)
	}

	return app
}
