package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := schedulers.RunAll(request.Processes(), s.options(request)...)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := schedulers.Run(algorithm, request.Processes(), s.options(request)...)
	if err != nil {
		return badRequest(ctx, err)
	}
	s.logger.Info("schedule computed",
		"algorithm", algorithm,
		"run_id", response.RunId,
		"processes", len(request.Jobs),
		"total_time", response.TotalTime,
	)
	return ctx.JSON(response)
}

// options applies the request's time quantum, falling back to the configured one.
func (s *SchedulerHandlerImpl) options(request requests.ScheduleRequests) []schedulers.Option {
	quantum := s.config.RoundRobinTimeQuantum
	if request.TimeQuantum != nil {
		quantum = *request.TimeQuantum
	}
	return []schedulers.Option{
		schedulers.WithTimeQuantum(quantum),
		schedulers.WithLogger(s.logger),
	}
}

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, errors.New("invalid request format")
	}
	request.Normalize()
	if err := request.Validate(); err != nil {
		return request, err
	}
	return request, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
