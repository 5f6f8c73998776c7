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

// BankHandler manages bank and branch reference data. Every write
// invalidates the cached reference snapshot so subsequent calculations
// see the change.
type BankHandler struct {
	reference reference.Service
}

func NewBankHandler(referenceService reference.Service) *BankHandler {
	return &BankHandler{reference: referenceService}
}

func (h *BankHandler) GetBanks(c *fiber.Ctx) error {
	banks, err := repositories.GetBanks()
	if err != nil {
		log.Printf("failed to list banks: %v", err)
		return response.ServerError(c, "Failed to retrieve banks")
	}
	return response.Success(c, "Banks retrieved", banks)
}

func (h *BankHandler) CreateBank(c *fiber.Ctx) error {
	var bank models.Bank
	if err := c.BodyParser(&bank); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if bank.AgreementType == "" {
		bank.AgreementType = models.AgreementStandard
	}

	v := validation.New()
	v.Bank(&bank)
	if !v.Valid() {
		return response.ValidationError(c, v.Error())
	}

	if err := repositories.CreateBank(&bank); err != nil {
		log.Printf("failed to create bank: %v", err)
		return response.ServerError(c, "Failed to create bank")
	}

	h.invalidate(c)
	return response.Created(c, bank)
}

func (h *BankHandler) UpdateBank(c *fiber.Ctx) error {
	bank, err := repositories.GetBank(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bank not found")
		}
		return response.ServerError(c, "Failed to retrieve bank")
	}

	if err := c.BodyParser(bank); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Bank(bank)
	if !v.Valid() {
		return response.ValidationError(c, v.Error())
	}

	if err := repositories.UpdateBank(bank); err != nil {
		log.Printf("failed to update bank %s: %v", bank.ID, err)
		return response.ServerError(c, "Failed to update bank")
	}

	h.invalidate(c)
	return response.Success(c, "Bank updated", bank)
}

func (h *BankHandler) DeleteBank(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := repositories.GetBank(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bank not found")
		}
		return response.ServerError(c, "Failed to retrieve bank")
	}

	if err := repositories.DeleteBank(id); err != nil {
		log.Printf("failed to delete bank %s: %v", id, err)
		return response.ServerError(c, "Failed to delete bank")
	}

	h.invalidate(c)
	return response.Success(c, "Bank deleted", nil)
}

func (h *BankHandler) GetBranches(c *fiber.Ctx) error {
	branches, err := repositories.GetBranches()
	if err != nil {
		log.Printf("failed to list branches: %v", err)
		return response.ServerError(c, "Failed to retrieve branches")
	}
	return response.Success(c, "Branches retrieved", branches)
}

func (h *BankHandler) invalidate(c *fiber.Ctx) {
	if err := h.reference.Invalidate(c.Context()); err != nil {
		log.Printf("failed to invalidate reference snapshot: %v", err)
	}
}
