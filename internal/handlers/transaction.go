package handlers

import (
	"errors"
	"log"

	"posrecon/internal/services/transaction"
	"posrecon/internal/utils/pagination"
	"posrecon/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service transaction.Service
}

func NewTransactionHandler(service transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req transaction.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	txn, err := h.service.Create(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, transaction.ErrInvalidInput),
			errors.Is(err, transaction.ErrUnknownTerminal):
			return response.BadRequest(c, err.Error())
		default:
			log.Printf("failed to create transaction: %v", err)
			return response.ServerError(c, "Failed to create transaction")
		}
	}
	return response.Created(c, txn)
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	txns, total, err := h.service.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		log.Printf("failed to list transactions: %v", err)
		return response.ServerError(c, "Failed to retrieve transactions")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, txns))
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	txn, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		log.Printf("failed to get transaction: %v", err)
		return response.ServerError(c, "Failed to retrieve transaction")
	}
	return response.Success(c, "Transaction retrieved", txn)
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		log.Printf("failed to delete transaction: %v", err)
		return response.ServerError(c, "Failed to delete transaction")
	}
	return response.Success(c, "Transaction deleted", nil)
}

// RecalculateTransactions reruns settlement over the stored set after
// reference-data edits.
func (h *TransactionHandler) RecalculateTransactions(c *fiber.Ctx) error {
	updated, err := h.service.Recalculate(c.Context())
	if err != nil {
		log.Printf("recalculation failed: %v", err)
		return response.ServerError(c, "Recalculation failed: "+err.Error())
	}
	return response.Success(c, "Transactions recalculated", fiber.Map{
		"updated": updated,
	})
}
