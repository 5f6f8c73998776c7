package repositories

import (
	"posrecon/internal/models"
)

func CreateTerminal(terminal *models.Terminal) error {
	return DB.Create(terminal).Error
}

func GetTerminal(id string) (*models.Terminal, error) {
	var terminal models.Terminal
	err := DB.First(&terminal, "id = ?", id).Error
	return &terminal, err
}

func GetTerminals() ([]models.Terminal, error) {
	var terminals []models.Terminal
	err := DB.Order("terminal_no").Find(&terminals).Error
	return terminals, err
}

// GetActiveTerminals returns only terminals currently accepting cards;
// the recommender candidates come from here.
func GetActiveTerminals() ([]models.Terminal, error) {
	var terminals []models.Terminal
	err := DB.Where("active = ?", true).Order("terminal_no").Find(&terminals).Error
	return terminals, err
}

func UpdateTerminal(terminal *models.Terminal) error {
	return DB.Save(terminal).Error
}

func DeleteTerminal(id string) error {
	return DB.Delete(&models.Terminal{}, "id = ?", id).Error
}
