package repository

import (
	"errors"

	"github.com/mathiuSpv/markap-back-apps-int/models"
	"gorm.io/gorm"
)

type Categories struct {
	db *gorm.DB
}

func NewCategories(db *gorm.DB) Categories {
	return Categories{db: db}
}

// FindByID returns the category, or nil if it does not exist.
func (r Categories) FindByID(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r Categories) FindAll() ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r Categories) Create(category *models.Category) error {
	return r.db.Create(category).Error
}
