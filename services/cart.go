package services

import (
	"context"
	"errors"
	"time"

	"github.com/mathiuSpv/markap-back-apps-int/models"
	"github.com/mathiuSpv/markap-back-apps-int/repository"
	"gorm.io/gorm"
)

// CartService is the cart engine. Every mutating operation runs inside one
// database transaction so the read-then-write sequences (active-cart check
// before create, line lookup before increment) cannot interleave with a
// concurrent request for the same user.
//
// Only the active (unpaid) cart is ever resolved for mutation, so a paid
// cart can never gain or lose items: AddItem/RemoveItem/MarkPaid against a
// user whose cart is already paid all report ErrCartNotFound.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Create opens a new cart for the user. ErrActiveCartExists if the user
// already has an unpaid cart; the partial unique index on carts backs the
// check for the case of two concurrent creates.
func (s *CartService) Create(ctx context.Context, userID string) (*models.Cart, error) {
	var cart *models.Cart
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := repository.NewCarts(tx)

		existing, err := carts.FindActiveByUser(userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrActiveCartExists
		}

		cart = &models.Cart{UserID: userID}
		return carts.Create(cart)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrActiveCartExists
		}
		return nil, err
	}
	return cart, nil
}

// Active returns the user's unpaid cart. A nil cart with a nil error means
// the user has none, which is a normal state, not a failure.
func (s *CartService) Active(ctx context.Context, userID string) (*models.Cart, error) {
	return repository.NewCarts(s.db.WithContext(ctx)).FindActiveByUser(userID)
}

// Get returns a cart by id, paid or not.
func (s *CartService) Get(ctx context.Context, cartID uint) (*models.Cart, error) {
	cart, err := repository.NewCarts(s.db.WithContext(ctx)).FindByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// History returns every cart the user has owned, oldest first.
func (s *CartService) History(ctx context.Context, userID string) ([]models.Cart, error) {
	carts, err := repository.NewCarts(s.db.WithContext(ctx)).FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, ErrUserHasNoCarts
	}
	return carts, nil
}

// MarkPaid closes the user's active cart. The transition is one-way; once
// paid the cart stops being "active", so a second call gets ErrCartNotFound.
func (s *CartService) MarkPaid(ctx context.Context, userID string) (*models.Cart, error) {
	var cart *models.Cart
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := repository.NewCarts(tx)

		active, err := carts.FindActiveByUser(userID)
		if err != nil {
			return err
		}
		if active == nil {
			return ErrCartNotFound
		}

		active.Paid = true
		if err := carts.Save(active); err != nil {
			return err
		}
		cart = active
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts quantity units of a product into the user's active cart:
// a new line if the product is not in the cart yet, otherwise an increment
// of the existing line. Stock is not touched here; consumption happens at
// checkout through ProductService.ConsumeStock.
func (s *CartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item *models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := repository.NewCarts(tx).FindActiveByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		items := repository.NewCartItems(tx)
		item, err = items.FindByCartAndProduct(cart.ID, productID)
		if err != nil {
			return err
		}

		if item == nil {
			product, err := repository.NewProducts(tx).FindByID(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}

			item = &models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			return items.Save(item)
		}

		item.Quantity += quantity
		return items.Save(item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem takes quantity units of a product out of the user's active
// cart. Removing exactly the held quantity deletes the line, in which case
// the returned item is nil. Removing more than is held changes nothing and
// reports ErrRemoveExceedsQuantity.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item *models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := repository.NewCarts(tx).FindActiveByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		items := repository.NewCartItems(tx)
		item, err = items.FindByCartAndProduct(cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrCartItemNotFound
		}

		switch {
		case quantity > item.Quantity:
			return ErrRemoveExceedsQuantity
		case quantity == item.Quantity:
			if err := items.Delete(item); err != nil {
				return err
			}
			item = nil
			return nil
		default:
			item.Quantity -= quantity
			return items.Save(item)
		}
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Items lists the lines of a cart. The cart itself must exist; an existing
// but empty cart yields an empty slice.
func (s *CartService) Items(ctx context.Context, cartID uint) ([]models.CartItem, error) {
	db := s.db.WithContext(ctx)

	cart, err := repository.NewCarts(db).FindByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	return repository.NewCartItems(db).FindAllByCart(cart.ID)
}
