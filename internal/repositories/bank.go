package repositories

import (
	"posrecon/internal/models"
)

func CreateBank(bank *models.Bank) error {
	return DB.Create(bank).Error
}

func GetBank(id string) (*models.Bank, error) {
	var bank models.Bank
	err := DB.First(&bank, "id = ?", id).Error
	return &bank, err
}

func GetBanks() ([]models.Bank, error) {
	var banks []models.Bank
	err := DB.Order("name").Find(&banks).Error
	return banks, err
}

func UpdateBank(bank *models.Bank) error {
	return DB.Save(bank).Error
}

func DeleteBank(id string) error {
	return DB.Delete(&models.Bank{}, "id = ?", id).Error
}

func CreateBranch(branch *models.Branch) error {
	return DB.Create(branch).Error
}

func GetBranches() ([]models.Branch, error) {
	var branches []models.Branch
	err := DB.Order("name").Find(&branches).Error
	return branches, err
}
