package repository

import (
	"errors"

	"github.com/mathiuSpv/markap-back-apps-int/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Carts holds the cart queries. Construct it over the *gorm.DB of the
// current transaction so every call shares the caller's transactional scope.
type Carts struct {
	db *gorm.DB
}

func NewCarts(db *gorm.DB) Carts {
	return Carts{db: db}
}

// FindActiveByUser returns the user's unpaid cart, or nil if there is none.
func (r Carts) FindActiveByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").
		Where("user_id = ? AND paid = ?", userID, false).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// FindAllByUser returns every cart the user has ever owned, oldest first.
func (r Carts) FindAllByUser(userID string) ([]models.Cart, error) {
	var carts []models.Cart
	err := r.db.Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&carts).Error
	if err != nil {
		return nil, err
	}
	return carts, nil
}

// FindByID returns the cart, or nil if it does not exist.
func (r Carts) FindByID(cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").First(&cart, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Writes omit associations: line items are managed through CartItems.
func (r Carts) Create(cart *models.Cart) error {
	return r.db.Omit(clause.Associations).Create(cart).Error
}

func (r Carts) Save(cart *models.Cart) error {
	return r.db.Omit(clause.Associations).Save(cart).Error
}
