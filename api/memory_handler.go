package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"os-simulator/config"
	"os-simulator/internal/memory"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
)

type MemoryHandler interface {
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Allocate(ctx *fiber.Ctx) error
	Deallocate(ctx *fiber.Ctx) error
	Reinitialize(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

var _ MemoryHandler = (*MemoryHandlerImpl)(nil)

type MemoryHandlerImpl struct {
	config   *config.SimulatorConfig
	sessions *memory.Sessions
}

func NewMemoryHandlerImpl(config *config.SimulatorConfig, sessions *memory.Sessions) *MemoryHandlerImpl {
	return &MemoryHandlerImpl{config: config, sessions: sessions}
}

var errSessionNotFound = errors.New("memory session not found")

// memoryErrorKinds maps allocator failures to status codes and kinds.
var memoryErrorKinds = []struct {
	err    error
	status int
	kind   string
}{
	{memory.ErrDuplicateProcess, fiber.StatusConflict, "duplicate_process"},
	{memory.ErrSizeExceedsCapacity, fiber.StatusUnprocessableEntity, "size_exceeds_capacity"},
	{memory.ErrInsufficientContiguousSpace, fiber.StatusConflict, "insufficient_contiguous_space"},
	{memory.ErrProcessNotAllocated, fiber.StatusNotFound, "process_not_allocated"},
	{memory.ErrCannotShrinkBelowUsedMemory, fiber.StatusConflict, "cannot_shrink_below_used_memory"},
	{memory.ErrInvalidSize, fiber.StatusBadRequest, "invalid_size"},
	{memory.ErrInvalidCapacity, fiber.StatusBadRequest, "invalid_capacity"},
	{memory.ErrUnknownStrategy, fiber.StatusBadRequest, "unknown_strategy"},
	{memory.ErrEmptyPID, fiber.StatusBadRequest, "empty_pid"},
	{errSessionNotFound, fiber.StatusNotFound, "session_not_found"},
}

func writeMemoryError(ctx *fiber.Ctx, err error) error {
	for _, k := range memoryErrorKinds {
		if errors.Is(err, k.err) {
			return writeError(ctx, k.status, k.kind, err)
		}
	}
	return writeError(ctx, fiber.StatusInternalServerError, "internal", err)
}

// Create opens a memory space. Capacity defaults to memory.default_capacity.
func (m *MemoryHandlerImpl) Create(ctx *fiber.Ctx) error {
	var request requests.CreateMemoryRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&request); err != nil {
			return writeError(ctx, fiber.StatusBadRequest, "invalid_request", errors.New("invalid request format"))
		}
	}
	if request.Capacity == 0 {
		request.Capacity = m.config.MemoryDefaultCapacity
	}

	id, allocator, err := m.sessions.Create(request.Capacity)
	if err != nil {
		return writeMemoryError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(responses.NewMemoryResponse(id, allocator.Layout()))
}

func (m *MemoryHandlerImpl) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	allocator, ok := m.sessions.Get(id)
	if !ok {
		return writeMemoryError(ctx, errSessionNotFound)
	}
	return ctx.JSON(responses.NewMemoryResponse(id, allocator.Layout()))
}

// Allocate places memory for a pid. Strategy defaults to memory.default_strategy.
func (m *MemoryHandlerImpl) Allocate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	allocator, ok := m.sessions.Get(id)
	if !ok {
		return writeMemoryError(ctx, errSessionNotFound)
	}

	var request requests.AllocateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid_request", errors.New("invalid request format"))
	}
	if request.Strategy == "" {
		request.Strategy = m.config.MemoryDefaultStrategy
	}
	strategy, err := memory.ParseStrategy(request.Strategy)
	if err != nil {
		return writeMemoryError(ctx, err)
	}

	allocation, err := allocator.Allocate(request.PID, request.Size, strategy)
	if err != nil {
		return writeMemoryError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(responses.AllocationResponse{
		Allocation: allocation,
		Memory:     responses.NewMemoryResponse(id, allocator.Layout()),
	})
}

func (m *MemoryHandlerImpl) Deallocate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	allocator, ok := m.sessions.Get(id)
	if !ok {
		return writeMemoryError(ctx, errSessionNotFound)
	}

	allocation, err := allocator.Deallocate(ctx.Params("pid"))
	if err != nil {
		return writeMemoryError(ctx, err)
	}
	return ctx.JSON(responses.AllocationResponse{
		Allocation: allocation,
		Memory:     responses.NewMemoryResponse(id, allocator.Layout()),
	})
}

// Reinitialize resets the space to a new capacity, dropping all allocations.
func (m *MemoryHandlerImpl) Reinitialize(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	allocator, ok := m.sessions.Get(id)
	if !ok {
		return writeMemoryError(ctx, errSessionNotFound)
	}

	var request requests.ReinitializeRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid_request", errors.New("invalid request format"))
	}
	if err := allocator.Reinitialize(request.Capacity); err != nil {
		return writeMemoryError(ctx, err)
	}
	return ctx.JSON(responses.NewMemoryResponse(id, allocator.Layout()))
}

func (m *MemoryHandlerImpl) Delete(ctx *fiber.Ctx) error {
	if !m.sessions.Delete(ctx.Params("id")) {
		return writeMemoryError(ctx, errSessionNotFound)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
