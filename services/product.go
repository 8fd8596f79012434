package services

import (
	"context"

	"github.com/mathiuSpv/markap-back-apps-int/models"
	"github.com/mathiuSpv/markap-back-apps-int/repository"
	"gorm.io/gorm"
)

// ProductInput carries the caller-editable product fields.
type ProductInput struct {
	Description string  `json:"description" binding:"required"`
	Details     string  `json:"details"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

// ProductService covers the catalog read surface, owner-scoped product
// management, and stock consumption for the checkout collaborator.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) Get(ctx context.Context, productID uint) (*models.Product, error) {
	product, err := repository.NewProducts(s.db.WithContext(ctx)).FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return repository.NewProducts(s.db.WithContext(ctx)).FindAll()
}

func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	return repository.NewProducts(s.db.WithContext(ctx)).FindFeatured()
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	db := s.db.WithContext(ctx)

	category, err := repository.NewCategories(db).FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return repository.NewProducts(db).FindByCategory(category.ID)
}

func (s *ProductService) Create(ctx context.Context, ownerID string, input ProductInput) (*models.Product, error) {
	var product *models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := repository.NewCategories(tx).FindByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}

		product = &models.Product{
			Description: input.Description,
			Details:     input.Details,
			Image:       input.Image,
			Price:       input.Price,
			Stock:       input.Stock,
			CategoryID:  category.ID,
			UserID:      ownerID,
		}
		return repository.NewProducts(tx).Create(product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Update rewrites the editable fields of a product the caller owns.
// Ownership is checked by comparing user ids, never loaded records.
func (s *ProductService) Update(ctx context.Context, ownerID string, productID uint, input ProductInput) (*models.Product, error) {
	var product *models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repository.NewProducts(tx)

		p, err := products.FindByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProductNotFound
		}
		if p.UserID != ownerID {
			return ErrNotProductOwner
		}

		category, err := repository.NewCategories(tx).FindByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}

		p.Description = input.Description
		p.Details = input.Details
		p.Image = input.Image
		p.Price = input.Price
		p.Stock = input.Stock
		p.CategoryID = category.ID
		p.Category = *category

		if err := products.Save(p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, ownerID string, productID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repository.NewProducts(tx)

		p, err := products.FindByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProductNotFound
		}
		if p.UserID != ownerID {
			return ErrNotProductOwner
		}

		return products.Delete(p)
	})
}

// Feature flags a product for the featured listing. Admin surface.
func (s *ProductService) Feature(ctx context.Context, productID uint) (*models.Product, error) {
	var product *models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repository.NewProducts(tx)

		p, err := products.FindByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProductNotFound
		}

		p.Featured = true
		if err := products.Save(p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ConsumeStock decrements available stock, called by the checkout flow
// after a cart is paid. Overselling is rejected rather than clamped: if
// fewer than quantity units remain nothing changes and the caller gets
// ErrInsufficientStock.
func (s *ProductService) ConsumeStock(ctx context.Context, productID uint, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product *models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repository.NewProducts(tx)

		p, err := products.FindByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProductNotFound
		}

		consumed, err := products.ConsumeStock(p.ID, quantity)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrInsufficientStock
		}

		// Re-read so the reported stock matches the stored row
		product, err = products.FindByID(p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
