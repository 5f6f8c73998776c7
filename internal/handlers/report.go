package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"posrecon/internal/services/report"
	"posrecon/internal/settlement"
	"posrecon/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service report.Service
}

func NewReportHandler(service report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetDailyReport serves the settlement report for one calendar day
// (?date=YYYY-MM-DD, default today).
func (h *ReportHandler) GetDailyReport(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	dailyReport, err := h.service.Daily(c.Context(), date)
	if err != nil {
		return h.mapError(c, err, "Failed to build daily report")
	}
	return response.Success(c, "Daily report ready", dailyReport)
}

// GetCashFlowForecast serves the expected-inflow forecast
// (?days=N, default 14, capped).
func (h *ReportHandler) GetCashFlowForecast(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "0"))

	forecast, err := h.service.CashFlow(c.Context(), days)
	if err != nil {
		return h.mapError(c, err, "Failed to build cash-flow forecast")
	}
	return response.Success(c, "Cash-flow forecast ready", forecast)
}

func (h *ReportHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	// A stored transaction pointing at deleted reference data is a
	// data problem the caller can fix; surface it as such.
	if errors.Is(err, settlement.ErrTerminalNotFound) || errors.Is(err, settlement.ErrBankNotFound) {
		return response.BadRequest(c, err.Error())
	}
	log.Printf("report error: %v", err)
	return response.ServerError(c, fallback)
}
