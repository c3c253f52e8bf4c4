package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"os-simulator/config"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

var _ SchedulerHandler = (*SchedulerHandlerImpl)(nil)

type SchedulerHandlerImpl struct {
	config *config.SimulatorConfig
}

func NewSchedulerHandlerImpl(config *config.SimulatorConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Schedule runs the algorithm named in the path. Unknown names fall back to
// fcfs; the response's algorithm field says which one ran.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid_request", errors.New("invalid request format"))
	}

	schedule, err := schedulers.RunScheduling(requests.ToProcesses(request.Processes), ctx.Params("algorithm"), s.quantum(request))
	if err != nil {
		return writeScheduleError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(schedule))
}

// AllAlgorithms runs every algorithm on the same processes for comparison.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid_request", errors.New("invalid request format"))
	}

	schedules, err := schedulers.RunAll(requests.ToProcesses(request.Processes), s.quantum(request))
	if err != nil {
		return writeScheduleError(ctx, err)
	}
	response := make([]responses.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		response = append(response, responses.NewScheduleResponse(schedule))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) quantum(request requests.ScheduleRequest) int {
	if request.Quantum > 0 {
		return request.Quantum
	}
	return s.config.RoundRobinTimeQuantum
}

func writeScheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidProcess) {
		return writeError(ctx, fiber.StatusBadRequest, "invalid_process", err)
	}
	return writeError(ctx, fiber.StatusInternalServerError, "internal", errors.New("can not process request"))
}

func writeError(ctx *fiber.Ctx, status int, kind string, err error) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error(), Kind: kind})
}
