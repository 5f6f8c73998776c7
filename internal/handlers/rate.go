package handlers

import (
	"log"
	"strconv"
	"time"

	"posrecon/internal/models"
	"posrecon/internal/repositories"
	"posrecon/internal/services/reference"
	"posrecon/internal/utils/response"
	"posrecon/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type RateHandler struct {
	reference reference.Service
}

func NewRateHandler(referenceService reference.Service) *RateHandler {
	return &RateHandler{reference: referenceService}
}

// GetRates lists the commission matrix, optionally narrowed to one
// bank via ?bank_id=.
func (h *RateHandler) GetRates(c *fiber.Ctx) error {
	var (
		rates []models.CommissionRate
		err   error
	)
	if bankID := c.Query("bank_id"); bankID != "" {
		rates, err = repositories.GetBankCommissionRates(bankID)
	} else {
		rates, err = repositories.GetCommissionRates()
	}
	if err != nil {
		log.Printf("failed to list commission rates: %v", err)
		return response.ServerError(c, "Failed to retrieve commission rates")
	}
	return response.Success(c, "Commission rates retrieved", rates)
}

func (h *RateHandler) CreateRate(c *fiber.Ctx) error {
	var rate models.CommissionRate
	if err := c.BodyParser(&rate); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if rate.ValidFrom.IsZero() {
		rate.ValidFrom = time.Now()
	}

	v := validation.New()
	v.CommissionRate(&rate)
	if !v.Valid() {
		return response.ValidationError(c, v.Error())
	}

	if err := repositories.CreateCommissionRate(&rate); err != nil {
		log.Printf("failed to create commission rate: %v", err)
		return response.ServerError(c, "Failed to create commission rate")
	}

	h.invalidate(c)
	return response.Created(c, rate)
}

func (h *RateHandler) DeleteRate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid rate id")
	}

	if err := repositories.DeleteCommissionRate(uint(id)); err != nil {
		log.Printf("failed to delete commission rate %d: %v", id, err)
		return response.ServerError(c, "Failed to delete commission rate")
	}

	h.invalidate(c)
	return response.Success(c, "Commission rate deleted", nil)
}

func (h *RateHandler) invalidate(c *fiber.Ctx) {
	if err := h.reference.Invalidate(c.Context()); err != nil {
		log.Printf("failed to invalidate reference snapshot: %v", err)
	}
}
