// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and groups
// endpoints by functionality.
package routes

import (
	"time"

	"posrecon/internal/handlers"
	"posrecon/internal/repositories"
	"posrecon/internal/services/reference"
	"posrecon/internal/services/report"
	"posrecon/internal/services/simulation"
	"posrecon/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Initialize services in dependency order
	referenceService := reference.NewService(repositories.CacheService)
	transactionService := transaction.NewService(referenceService)
	simulationService := simulation.NewService(referenceService)
	reportService := report.NewService(referenceService)

	// Initialize handlers
	bankHandler := handlers.NewBankHandler(referenceService)
	terminalHandler := handlers.NewTerminalHandler(referenceService)
	rateHandler := handlers.NewRateHandler(referenceService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	reportHandler := handlers.NewReportHandler(reportService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "POS settlement reconciliation API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)

	setupReferenceRoutes(api, bankHandler, terminalHandler, rateHandler)
	setupTransactionRoutes(api, transactionHandler)
	setupSimulationRoutes(api, simulationHandler)
	setupReportRoutes(api, reportHandler)
}

func setupReferenceRoutes(router fiber.Router, banks *handlers.BankHandler, terminals *handlers.TerminalHandler, rates *handlers.RateHandler) {
	bank := router.Group("/banks")
	bank.Get("/", banks.GetBanks)
	bank.Post("/", banks.CreateBank)
	bank.Put("/:id", banks.UpdateBank)
	bank.Delete("/:id", banks.DeleteBank)

	router.Get("/branches", banks.GetBranches)

	terminal := router.Group("/terminals")
	terminal.Get("/", terminals.GetTerminals)
	terminal.Post("/", terminals.CreateTerminal)
	terminal.Put("/:id", terminals.UpdateTerminal)
	terminal.Delete("/:id", terminals.DeleteTerminal)

	rate := router.Group("/rates")
	rate.Get("/", rates.GetRates)
	rate.Post("/", rates.CreateRate)
	rate.Delete("/:id", rates.DeleteRate)
}

func setupTransactionRoutes(router fiber.Router, h *handlers.TransactionHandler) {
	txn := router.Group("/transactions")
	txn.Get("/", h.GetTransactions)
	txn.Post("/", h.CreateTransaction)
	txn.Get("/:id", h.GetTransaction)
	txn.Delete("/:id", h.DeleteTransaction)
	txn.Post("/recalculate", h.RecalculateTransactions)
}

func setupSimulationRoutes(router fiber.Router, h *handlers.SimulationHandler) {
	// Simulations recompute over the full snapshot per call; keep
	// scripted clients from hammering them.
	sim := router.Group("/simulation", limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	sim.Post("/calculate", h.Calculate)
	sim.Post("/compare", h.Compare)
	sim.Post("/recommend", h.Recommend)
}

func setupReportRoutes(router fiber.Router, h *handlers.ReportHandler) {
	reports := router.Group("/reports")
	reports.Get("/daily", h.GetDailyReport)
	reports.Get("/cashflow", h.GetCashFlowForecast)
}
