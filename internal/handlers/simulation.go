package handlers

import (
	"errors"
	"log"

	"posrecon/internal/services/simulation"
	"posrecon/internal/settlement"
	"posrecon/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SimulationHandler struct {
	service simulation.Service
}

func NewSimulationHandler(service simulation.Service) *SimulationHandler {
	return &SimulationHandler{service: service}
}

func (h *SimulationHandler) Calculate(c *fiber.Ctx) error {
	var req simulation.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.service.Calculate(c.Context(), req)
	if err != nil {
		return h.mapError(c, err, "Calculation failed")
	}
	return response.Success(c, "Calculation complete", result)
}

func (h *SimulationHandler) Compare(c *fiber.Ctx) error {
	var req simulation.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	comparison, err := h.service.Compare(c.Context(), req)
	if err != nil {
		return h.mapError(c, err, "Comparison failed")
	}
	return response.Success(c, "Comparison complete", comparison)
}

func (h *SimulationHandler) Recommend(c *fiber.Ctx) error {
	var req simulation.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	recommendations, err := h.service.Recommend(c.Context(), req)
	if err != nil {
		return h.mapError(c, err, "Recommendation failed")
	}
	return response.Success(c, "Recommendations ready", recommendations)
}

func (h *SimulationHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, simulation.ErrInvalidInput),
		errors.Is(err, simulation.ErrNoCandidates),
		errors.Is(err, settlement.ErrTerminalNotFound),
		errors.Is(err, settlement.ErrBankNotFound):
		return response.BadRequest(c, err.Error())
	default:
		log.Printf("simulation error: %v", err)
		return response.ServerError(c, fallback)
	}
}
