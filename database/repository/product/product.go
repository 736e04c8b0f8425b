package productRepo

import "recreio/models"

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	// GetByID retrieves a product by its unique ID.
	GetByID(id string) (*models.Product, error)
	// GetAll retrieves all products ordered by name.
	GetAll() ([]models.Product, error)
	// Create inserts a new product record.
	Create(product *models.Product) error
	// Update modifies an existing product record.
	Update(product *models.Product) error
	// Delete removes a product record by its ID.
	Delete(id string) error
	// AdjustStock applies a signed delta to the product's stock as one
	// atomic read-modify-write and returns the updated document. A delta
	// that would drive stock negative fails with ErrInsufficientStock and
	// leaves the document untouched.
	AdjustStock(id string, delta int) (*models.Product, error)
}
