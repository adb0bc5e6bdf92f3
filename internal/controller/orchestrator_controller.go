package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"
	"ai-tutoring-be/pkg/orchestrator/params"
)

type IOrchestratorController interface {
	RegisterRoutes(r fiber.Router)
	Orchestrate(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type orchestratorController struct {
	service service.IOrchestratorService
}

func NewOrchestratorController(service service.IOrchestratorService) IOrchestratorController {
	return &orchestratorController{service: service}
}

func (c *orchestratorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/orchestrator/v1")
	h.Post("/orchestrate", c.Orchestrate)
	h.Get("/health", c.Health)
}

func (c *orchestratorController) Orchestrate(ctx *fiber.Ctx) error {
	var req dto.OrchestrateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Orchestrate(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, params.ErrInvalidProfile) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	// The orchestration payload is its own envelope (Success is part of the
	// contract), so it is returned as-is rather than wrapped.
	return ctx.JSON(res)
}

func (c *orchestratorController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Health())
}
