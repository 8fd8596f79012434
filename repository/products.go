package repository

import (
	"errors"

	"github.com/mathiuSpv/markap-back-apps-int/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) Products {
	return Products{db: db}
}

// FindByID returns the product, or nil if it does not exist.
func (r Products) FindByID(productID uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r Products) FindAll() ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Preload("Category").Order("created_at desc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r Products) FindFeatured() ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Preload("Category").
		Where("featured = ?", true).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r Products) FindByCategory(categoryID uint) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Where("category_id = ?", categoryID).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ConsumeStock decrements stock in a single conditional UPDATE so two
// concurrent consumers cannot oversell. Reports whether a row was changed.
func (r Products) ConsumeStock(productID uint, quantity int) (bool, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Writes omit associations: categories are managed on their own.
func (r Products) Create(product *models.Product) error {
	return r.db.Omit(clause.Associations).Create(product).Error
}

func (r Products) Save(product *models.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

func (r Products) Delete(product *models.Product) error {
	return r.db.Delete(product).Error
}
