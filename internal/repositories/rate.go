package repositories

import (
	"posrecon/internal/models"
)

func CreateCommissionRate(rate *models.CommissionRate) error {
	return DB.Create(rate).Error
}

func GetCommissionRates() ([]models.CommissionRate, error) {
	var rates []models.CommissionRate
	err := DB.Order("bank_id, card_type, installment_count").Find(&rates).Error
	return rates, err
}

func GetBankCommissionRates(bankID string) ([]models.CommissionRate, error) {
	var rates []models.CommissionRate
	err := DB.Where("bank_id = ?", bankID).
		Order("card_type, installment_count").Find(&rates).Error
	return rates, err
}

func DeleteCommissionRate(id uint) error {
	return DB.Delete(&models.CommissionRate{}, id).Error
}
