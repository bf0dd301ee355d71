package service

import (
	"context"
	"time"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/repository"
	"github.com/ZawHtut01/ProductCatalog/internal/result"
	"github.com/ZawHtut01/ProductCatalog/internal/validation"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo               repository.ProductRepository
	logger                    zerolog.Logger
	enforceValidationOnUpdate bool
}

// NewProductService creates a new product service. enforceValidationOnUpdate
// controls whether updates re-run the creation validation rules; the
// historical behaviour is to skip them, so callers normally pass false.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger, enforceValidationOnUpdate bool) ProductService {
	return &productService{
		productRepo:               productRepo,
		logger:                    logger.With().Str("service", "product").Logger(),
		enforceValidationOnUpdate: enforceValidationOnUpdate,
	}
}

// GetAll retrieves all active products in their external representation.
func (s *productService) GetAll(ctx context.Context) result.Result[[]model.ProductResponse] {
	res := s.productRepo.GetAll(ctx)
	if !res.IsSuccess() {
		s.logger.Error().
			Str("error", res.ErrorMessage()).
			Int("status", res.StatusCode()).
			Msg("failed to get all products")
		return result.FailureFrom[[]model.ProductResponse](res)
	}

	products := res.Data()
	responses := make([]model.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, p.ToResponse())
	}

	s.logger.Debug().Int("count", len(responses)).Msg("retrieved products")
	return result.Success(responses)
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) result.Result[model.ProductResponse] {
	res := s.productRepo.GetByID(ctx, id)
	if !res.IsSuccess() {
		s.logger.Debug().
			Int("product_id", id).
			Int("status", res.StatusCode()).
			Msg("failed to get product by ID")
		return result.FailureFrom[model.ProductResponse](res)
	}

	return result.Success(res.Data().ToResponse())
}

// Create validates the request and creates a new product. Validation
// violations come back as a 400 validation failure with the full ordered
// list; the repository is not called in that case.
func (s *productService) Create(ctx context.Context, req model.CreateProductRequest) result.Result[model.ProductResponse] {
	if v := validation.ValidateProduct(req); !v.IsSuccess() {
		s.logger.Warn().
			Strs("violations", v.ValidationErrors()).
			Msg("product creation rejected by validation")
		return result.ValidationFailure[model.ProductResponse](v.ValidationErrors())
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}

	res := s.productRepo.Create(ctx, product)
	if !res.IsSuccess() {
		s.logger.Error().
			Str("product_name", req.Name).
			Str("error", res.ErrorMessage()).
			Int("status", res.StatusCode()).
			Msg("failed to create product")
		return result.FailureFrom[model.ProductResponse](res)
	}

	s.logger.Info().Int("product_id", res.Data().ID).Msg("product created")
	return result.Created(res.Data().ToResponse())
}

// Update overlays the request onto the existing product and saves it.
func (s *productService) Update(ctx context.Context, req model.UpdateProductRequest) result.Result[bool] {
	if s.enforceValidationOnUpdate {
		createReq := model.CreateProductRequest{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
		}
		if v := validation.ValidateProduct(createReq); !v.IsSuccess() {
			s.logger.Warn().
				Int("product_id", req.ID).
				Strs("violations", v.ValidationErrors()).
				Msg("product update rejected by validation")
			return result.ValidationFailure[bool](v.ValidationErrors())
		}
	}

	existing := s.productRepo.GetByID(ctx, req.ID)
	if !existing.IsSuccess() {
		return result.FailureFrom[bool](existing)
	}

	product := existing.Data()
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	now := time.Now().UTC()
	product.UpdatedAt = &now

	res := s.productRepo.Update(ctx, product)
	if !res.IsSuccess() {
		s.logger.Error().
			Int("product_id", req.ID).
			Str("error", res.ErrorMessage()).
			Int("status", res.StatusCode()).
			Msg("failed to update product")
		return result.FailureFrom[bool](res)
	}

	s.logger.Info().Int("product_id", req.ID).Msg("product updated")
	return result.Success(true)
}

// Delete soft-deletes a product by ID.
func (s *productService) Delete(ctx context.Context, id int) result.Result[bool] {
	res := s.productRepo.Delete(ctx, id)
	if !res.IsSuccess() {
		s.logger.Error().
			Int("product_id", id).
			Str("error", res.ErrorMessage()).
			Int("status", res.StatusCode()).
			Msg("failed to delete product")
		return result.FailureFrom[bool](res)
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return result.Success(true)
}
