package products

import "recreio/models"

// ProductService manages the snack and toy catalogue.
type ProductService interface {
	// List returns all products ordered by name.
	List() ([]models.Product, error)
	// Get retrieves a product by ID.
	Get(id string) (*models.Product, error)
	// Create adds a new product to the catalogue.
	Create(product *models.Product) (*models.Product, error)
	// Update modifies name, price and restocking threshold. Stock is not
	// written here; it only moves through Restock and the consumption ledger.
	Update(product *models.Product) error
	// Delete removes a product from the catalogue.
	Delete(id string) error
	// Restock applies a signed delta to the shelf count atomically.
	Restock(id string, delta int) (*models.Product, error)
}
