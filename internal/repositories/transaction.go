package repositories

import (
	"time"

	"posrecon/internal/models"
)

func CreateTransaction(txn *models.Transaction) error {
	return DB.Create(txn).Error
}

func GetTransaction(id string) (*models.Transaction, error) {
	var txn models.Transaction
	err := DB.First(&txn, "id = ?", id).Error
	return &txn, err
}

// GetTransactions returns a page of transactions, newest first, with
// the total count for pagination metadata.
func GetTransactions(limit, offset int) ([]models.Transaction, int64, error) {
	var txns []models.Transaction
	var total int64

	if err := DB.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := DB.Limit(limit).Offset(offset).Order("date DESC").Find(&txns).Error
	return txns, total, err
}

// GetAllTransactions loads the full transaction set for batch
// recalculation and forecasting.
func GetAllTransactions() ([]models.Transaction, error) {
	var txns []models.Transaction
	err := DB.Order("date DESC").Find(&txns).Error
	return txns, err
}

// GetTransactionsByDay loads the transactions of one calendar day.
func GetTransactionsByDay(day time.Time) ([]models.Transaction, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var txns []models.Transaction
	err := DB.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").Find(&txns).Error
	return txns, err
}

func UpdateTransaction(txn *models.Transaction) error {
	return DB.Save(txn).Error
}

func DeleteTransaction(id string) error {
	return DB.Delete(&models.Transaction{}, "id = ?", id).Error
}
