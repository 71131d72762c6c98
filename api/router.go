package api

import "github.com/gofiber/fiber/v2"

// NewRouter wires the scheduler routes onto a fresh fiber app.
func NewRouter(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
	}

	return app
}
