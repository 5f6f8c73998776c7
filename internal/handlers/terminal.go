package handlers

import (
	"errors"
	"log"

	"posrecon/internal/models"
	"posrecon/internal/repositories"
	"posrecon/internal/services/reference"
	"posrecon/internal/utils/response"
	"posrecon/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TerminalHandler struct {
	reference reference.Service
}

func NewTerminalHandler(referenceService reference.Service) *TerminalHandler {
	return &TerminalHandler{reference: referenceService}
}

func (h *TerminalHandler) GetTerminals(c *fiber.Ctx) error {
	terminals, err := repositories.GetTerminals()
	if err != nil {
		log.Printf("failed to list terminals: %v", err)
		return response.ServerError(c, "Failed to retrieve terminals")
	}
	return response.Success(c, "Terminals retrieved", terminals)
}

func (h *TerminalHandler) CreateTerminal(c *fiber.Ctx) error {
	terminal := models.Terminal{Active: true, SettlementPolicy: models.SettlementNextDay}
	if err := c.BodyParser(&terminal); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Terminal(&terminal)
	if !v.Valid() {
		return response.ValidationError(c, v.Error())
	}

	// The owning bank must exist before a terminal can point at it.
	if _, err := repositories.GetBank(terminal.BankID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.BadRequest(c, "Unknown bank: "+terminal.BankID)
		}
		return response.ServerError(c, "Failed to verify bank")
	}

	if err := repositories.CreateTerminal(&terminal); err != nil {
		log.Printf("failed to create terminal: %v", err)
		return response.ServerError(c, "Failed to create terminal")
	}

	h.invalidate(c)
	return response.Created(c, terminal)
}

func (h *TerminalHandler) UpdateTerminal(c *fiber.Ctx) error {
	terminal, err := repositories.GetTerminal(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Terminal not found")
		}
		return response.ServerError(c, "Failed to retrieve terminal")
	}

	if err := c.BodyParser(terminal); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Terminal(terminal)
	if !v.Valid() {
		return response.ValidationError(c, v.Error())
	}

	if err := repositories.UpdateTerminal(terminal); err != nil {
		log.Printf("failed to update terminal %s: %v", terminal.ID, err)
		return response.ServerError(c, "Failed to update terminal")
	}

	h.invalidate(c)
	return response.Success(c, "Terminal updated", terminal)
}

func (h *TerminalHandler) DeleteTerminal(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := repositories.GetTerminal(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Terminal not found")
		}
		return response.ServerError(c, "Failed to retrieve terminal")
	}

	if err := repositories.DeleteTerminal(id); err != nil {
		log.Printf("failed to delete terminal %s: %v", id, err)
		return response.ServerError(c, "Failed to delete terminal")
	}

	h.invalidate(c)
	return response.Success(c, "Terminal deleted", nil)
}

func (h *TerminalHandler) invalidate(c *fiber.Ctx) {
	if err := h.reference.Invalidate(c.Context()); err != nil {
		log.Printf("failed to invalidate reference snapshot: %v", err)
	}
}
