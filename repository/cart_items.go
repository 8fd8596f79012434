package repository

import (
	"errors"

	"github.com/mathiuSpv/markap-back-apps-int/models"
	"gorm.io/gorm"
)

type CartItems struct {
	db *gorm.DB
}

func NewCartItems(db *gorm.DB) CartItems {
	return CartItems{db: db}
}

// FindByCartAndProduct returns the line for (cart, product), or nil if the
// product is not in the cart yet.
func (r CartItems) FindByCartAndProduct(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindAllByCart always returns a slice, empty when the cart holds nothing.
func (r CartItems) FindAllByCart(cartID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := r.db.Where("cart_id = ?", cartID).
		Order("added_at asc, id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r CartItems) Save(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r CartItems) Delete(item *models.CartItem) error {
	return r.db.Delete(item).Error
}
