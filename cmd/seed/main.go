// Command seed loads a realistic reference data set (banks, branches,
// terminals, commission matrix) and a batch of synthetic transactions
// for local development and demos.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"posrecon/internal/config"
	"posrecon/internal/models"
	"posrecon/internal/repositories"

	"github.com/google/uuid"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	var count int64
	repositories.DB.Model(&models.Bank{}).Count(&count)
	if count > 0 {
		log.Println("Reference data already seeded")
		return
	}

	seedBanks()
	seedBranches()
	seedTerminals()
	seedRates()
	seedTransactions(config.GetIntEnv("SEED_TRANSACTIONS", 150))

	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("⚠️ Failed to flush Redis cache: %v", err)
		}
	}

	log.Println("✅ Seed data loaded successfully")
}

func seedBanks() {
	banks := []models.Bank{
		{ID: "ziraat", Name: "Ziraat Bankası", DefaultEFTFee: 12.80, AgreementType: models.AgreementCorporate, Color: "#00a651"},
		{ID: "garanti", Name: "Garanti BBVA", DefaultEFTFee: 15.00, AgreementType: models.AgreementSpecial, Color: "#00854d"},
		{ID: "akbank", Name: "Akbank", DefaultEFTFee: 14.50, AgreementType: models.AgreementStandard, Color: "#e31e24"},
		{ID: "yapikredi", Name: "Yapı Kredi", DefaultEFTFee: 13.75, AgreementType: models.AgreementSpecial, Color: "#004990"},
		{ID: "isbank", Name: "İş Bankası", DefaultEFTFee: 14.00, AgreementType: models.AgreementCorporate, Color: "#00529c"},
		{ID: "halkbank", Name: "Halkbank", DefaultEFTFee: 11.50, AgreementType: models.AgreementStandard, Color: "#003b7c"},
	}
	for i := range banks {
		if err := repositories.CreateBank(&banks[i]); err != nil {
			log.Fatalf("Failed to seed bank %s: %v", banks[i].ID, err)
		}
	}
}

func seedBranches() {
	branches := []models.Branch{
		{ID: "branch-1", Name: "Kadıköy Mağaza", Location: "Kadıköy Çarşı", City: "İstanbul"},
		{ID: "branch-2", Name: "Beşiktaş Mağaza", Location: "Beşiktaş Merkez", City: "İstanbul"},
		{ID: "branch-3", Name: "Ankara Kızılay", Location: "Kızılay AVM", City: "Ankara"},
		{ID: "branch-4", Name: "İzmir Alsancak", Location: "Alsancak Kordon", City: "İzmir"},
	}
	for i := range branches {
		if err := repositories.CreateBranch(&branches[i]); err != nil {
			log.Fatalf("Failed to seed branch %s: %v", branches[i].ID, err)
		}
	}
}

func seedTerminals() {
	terminals := []models.Terminal{
		{ID: "pos-ziraat-1", BankID: "ziraat", BranchID: "branch-1", TerminalNo: "ZRT001",
			SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 150, Active: true},
		{ID: "pos-ziraat-2", BankID: "ziraat", BranchID: "branch-2", TerminalNo: "ZRT002",
			SettlementPolicy: models.SettlementBlocked, BlockedDays: 7, MonthlyMaintenanceFee: 120, Active: true},
		{ID: "pos-garanti-1", BankID: "garanti", BranchID: "branch-1", TerminalNo: "GRT001",
			SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 175, Active: true},
		{ID: "pos-garanti-2", BankID: "garanti", BranchID: "branch-3", TerminalNo: "GRT002",
			SettlementPolicy: models.SettlementHybrid, HybridNextDayShare: 70, HybridBlockedShare: 30,
			BlockedDays: 14, MonthlyMaintenanceFee: 160, Active: true},
		{ID: "pos-akbank-1", BankID: "akbank", BranchID: "branch-1", TerminalNo: "AKB001",
			SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 165, Active: true},
		{ID: "pos-akbank-2", BankID: "akbank", BranchID: "branch-4", TerminalNo: "AKB002",
			SettlementPolicy: models.SettlementBlocked, BlockedDays: 5, MonthlyMaintenanceFee: 140, Active: true},
		{ID: "pos-yapikredi-1", BankID: "yapikredi", BranchID: "branch-2", TerminalNo: "YKB001",
			SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 180, Active: true},
		{ID: "pos-yapikredi-2", BankID: "yapikredi", BranchID: "branch-4", TerminalNo: "YKB002",
			SettlementPolicy: models.SettlementHybrid, HybridNextDayShare: 60, HybridBlockedShare: 40,
			BlockedDays: 10, MonthlyMaintenanceFee: 155, Active: true},
		{ID: "pos-isbank-1", BankID: "isbank", BranchID: "branch-3", TerminalNo: "ISB001",
			SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 170, Active: true},
		{ID: "pos-halkbank-1", BankID: "halkbank", BranchID: "branch-3", TerminalNo: "HLK001",
			SettlementPolicy: models.SettlementBlocked, BlockedDays: 3, MonthlyMaintenanceFee: 100, Active: true},
	}
	for i := range terminals {
		if err := repositories.CreateTerminal(&terminals[i]); err != nil {
			log.Fatalf("Failed to seed terminal %s: %v", terminals[i].ID, err)
		}
	}
}

type rateRow struct {
	installments int
	rate         float64
}

func seedRates() {
	validFrom := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	matrix := map[string]map[string][]rateRow{
		"ziraat": {
			models.CardPersonal:   {{1, 1.69}, {2, 2.49}, {3, 2.99}, {4, 3.49}, {5, 3.99}, {6, 4.29}, {9, 5.29}, {12, 6.29}},
			models.CardCommercial: {{1, 2.29}, {2, 4.50}, {3, 5.10}, {6, 6.50}, {12, 8.50}},
		},
		"garanti": {
			models.CardPersonal:   {{1, 1.79}, {2, 2.69}, {3, 3.19}, {6, 4.49}, {9, 5.49}, {12, 6.49}},
			models.CardCommercial: {{1, 2.39}, {3, 5.29}, {6, 6.79}, {12, 8.79}},
		},
		"akbank": {
			models.CardPersonal:   {{1, 1.59}, {2, 2.39}, {3, 2.89}, {6, 4.19}, {12, 6.19}},
			models.CardCommercial: {{1, 2.19}, {3, 4.99}, {6, 6.39}, {12, 8.39}},
		},
		"yapikredi": {
			models.CardPersonal:   {{1, 1.75}, {3, 3.09}, {6, 4.39}, {12, 6.39}},
			models.CardCommercial: {{1, 2.35}, {3, 5.19}, {6, 6.69}},
		},
		"isbank": {
			models.CardPersonal:   {{1, 1.65}, {3, 2.95}, {6, 4.25}, {12, 6.25}},
			models.CardCommercial: {{1, 2.25}, {3, 5.05}, {6, 6.45}},
		},
		"halkbank": {
			models.CardPersonal:   {{1, 1.55}, {3, 2.85}, {6, 4.15}, {12, 6.15}},
			models.CardCommercial: {{1, 2.15}, {3, 4.95}, {6, 6.35}},
		},
	}

	for bankID, byCard := range matrix {
		for cardType, rows := range byCard {
			for _, row := range rows {
				rate := models.CommissionRate{
					BankID:           bankID,
					CardType:         cardType,
					InstallmentCount: row.installments,
					Rate:             row.rate,
					ValidFrom:        validFrom,
				}
				if err := repositories.CreateCommissionRate(&rate); err != nil {
					log.Fatalf("Failed to seed rate %s/%s/%d: %v", bankID, cardType, row.installments, err)
				}
			}
		}
	}
}

func seedTransactions(count int) {
	terminals, err := repositories.GetTerminals()
	if err != nil || len(terminals) == 0 {
		log.Fatalf("Failed to load terminals for transaction seed: %v", err)
	}

	cardTypes := []string{models.CardPersonal, models.CardCommercial}
	installments := []int{1, 2, 3, 6, 9, 12}
	statuses := []string{models.StatusPending, models.StatusProcessed, models.StatusTransferred}
	amounts := []float64{150, 250, 500, 750, 1000, 1500, 2000, 3000, 5000, 7500, 10000, 15000, 20000}

	for i := 0; i < count; i++ {
		terminal := terminals[rand.Intn(len(terminals))]
		daysAgo := rand.Intn(30)
		gross := amounts[rand.Intn(len(amounts))] + rand.Float64()*100

		txn := models.Transaction{
			ID:               uuid.NewString(),
			Date:             time.Now().AddDate(0, 0, -daysAgo),
			GrossAmount:      float64(int(gross*100)) / 100,
			CardType:         cardTypes[rand.Intn(len(cardTypes))],
			InstallmentCount: installments[rand.Intn(len(installments))],
			TerminalID:       terminal.ID,
			BranchID:         terminal.BranchID,
			BankID:           terminal.BankID,
			Status:           statuses[rand.Intn(len(statuses))],
			CardLastFour:     fmt.Sprintf("%04d", rand.Intn(10000)),
			AuthCode:         fmt.Sprintf("%06d", rand.Intn(1000000)),
			Metadata: models.JSON{
				"source":   "seed",
				"batch_no": fmt.Sprintf("B%06d", rand.Intn(1000000)),
			},
		}
		if err := repositories.CreateTransaction(&txn); err != nil {
			log.Fatalf("Failed to seed transaction: %v", err)
		}
	}
	log.Printf("Seeded %d transactions", count)
}
