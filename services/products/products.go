// Package products manages the catalogue of snacks and toys sold against
// session tabs.
package products

import (
	"errors"
	"strings"

	productRepo "recreio/database/repository/product"
	"recreio/models"

	"github.com/google/uuid"
)

// ErrInsufficientStock re-exports the stock guard for callers that restock
// with a negative delta.
var ErrInsufficientStock = productRepo.ErrInsufficientStock

// DefaultProductService implements ProductService.
type DefaultProductService struct {
	Repo productRepo.ProductRepository
}

// List returns all products ordered by name.
func (s *DefaultProductService) List() ([]models.Product, error) {
	return s.Repo.GetAll()
}

// Get retrieves a product by ID.
func (s *DefaultProductService) Get(id string) (*models.Product, error) {
	return s.Repo.GetByID(id)
}

// Create adds a new product to the catalogue.
func (s *DefaultProductService) Create(product *models.Product) (*models.Product, error) {
	if err := validate(product); err != nil {
		return nil, err
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := s.Repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update modifies name, price and restocking threshold.
func (s *DefaultProductService) Update(product *models.Product) error {
	if err := validate(product); err != nil {
		return err
	}
	return s.Repo.Update(product)
}

// Delete removes a product from the catalogue.
func (s *DefaultProductService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// Restock applies a signed delta to the shelf count.
func (s *DefaultProductService) Restock(id string, delta int) (*models.Product, error) {
	if delta == 0 {
		return s.Repo.GetByID(id)
	}
	return s.Repo.AdjustStock(id, delta)
}

func validate(product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return errors.New("product name is required")
	}
	if product.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	if product.Stock < 0 {
		return errors.New("product stock cannot be negative")
	}
	if product.MinStock < 0 {
		return errors.New("restocking threshold cannot be negative")
	}
	return nil
}
