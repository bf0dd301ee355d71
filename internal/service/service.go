package service

import (
	"context"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/result"
)

// ProductService defines the product catalog use cases. Every operation
// returns an outcome; the service layer never panics and propagates upstream
// failures verbatim, except validation failures which are always pinned to
// status 400.
type ProductService interface {
	// GetAll retrieves all active products in their external representation.
	GetAll(ctx context.Context) result.Result[[]model.ProductResponse]

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) result.Result[model.ProductResponse]

	// Create validates the request and creates a new product.
	Create(ctx context.Context, req model.CreateProductRequest) result.Result[model.ProductResponse]

	// Update overlays the request onto the existing product and saves it.
	Update(ctx context.Context, req model.UpdateProductRequest) result.Result[bool]

	// Delete soft-deletes a product by ID.
	Delete(ctx context.Context, id int) result.Result[bool]
}
