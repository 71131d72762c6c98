package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SimulatorConfig
}

func NewSchedulerHandlerImpl(config *config.SimulatorConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, table, ok := parseScheduleRequest(ctx)
	if !ok {
		return nil
	}

	totalTime := schedulers.FirstComeFirstServe(table)
	log.Println("fcfs run completed. total time:", totalTime)

	return ctx.JSON(schedulers.GenerateResponse("fcfs", request.Bursts, table, totalTime))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, table, ok := parseScheduleRequest(ctx)
	if !ok {
		return nil
	}

	quantum := request.Quantum
	if quantum <= 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	log.Println("running roundRobin algorithm with timeQuantum =", quantum)

	totalTime := schedulers.RoundRobin(table, quantum)
	log.Println("rr run completed. total time:", totalTime)

	return ctx.JSON(schedulers.GenerateResponse("rr", request.Bursts, table, totalTime))
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	request, table, ok := parseScheduleRequest(ctx)
	if !ok {
		return nil
	}

	totalTime := schedulers.ShortestJobFirst(table)
	log.Println("sjf run completed. total time:", totalTime)

	return ctx.JSON(schedulers.GenerateResponse("sjf", request.Bursts, table, totalTime))
}

// parseScheduleRequest decodes the request body and builds a fresh table for
// this run. On failure it writes the 400 response itself and reports !ok.
func parseScheduleRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, core.Table, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return request, nil, false
	}

	table, err := core.NewTable(request.Bursts)
	if err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return request, nil, false
	}

	return request, table, true
}
