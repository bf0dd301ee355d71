package repository

import (
	"context"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/result"
)

// ProductRepository defines the data-access operations for the product
// catalog. Every operation reports expected failures through the returned
// result rather than an error: lookup misses come back as 404 results,
// duplicate names as 400 results, and unexpected storage faults are caught
// inside the implementation and returned as generic 500 results with the
// driver detail logged, never exposed.
type ProductRepository interface {
	// GetAll retrieves all active products, newest first.
	GetAll(ctx context.Context) result.Result[[]model.Product]

	// GetByID retrieves a single active product by its ID.
	GetByID(ctx context.Context, id int) result.Result[model.Product]

	// Create inserts a new product and assigns its identity. The name must be
	// unique among active products.
	Create(ctx context.Context, product model.Product) result.Result[model.Product]

	// Update replaces the mutable fields of an existing product. The name must
	// remain unique among active products other than this one.
	Update(ctx context.Context, product model.Product) result.Result[bool]

	// Delete soft-deletes a product by flipping its active flag.
	Delete(ctx context.Context, id int) result.Result[bool]
}
