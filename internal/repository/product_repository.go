package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/result"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements ProductRepository using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves all active products, newest first.
func (r *productRepository) GetAll(ctx context.Context) result.Result[[]model.Product] {
	query := `
		SELECT id, name, description, price, category, created_at, updated_at, is_active
		FROM products
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return result.Failure[[]model.Product]("An error occurred while retrieving products", 500)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.CreatedAt, &p.UpdatedAt, &p.IsActive)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return result.Failure[[]model.Product]("An error occurred while retrieving products", 500)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return result.Failure[[]model.Product]("An error occurred while retrieving products", 500)
	}

	return result.Success(products)
}

// GetByID retrieves a single active product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int) result.Result[model.Product] {
	query := `
		SELECT id, name, description, price, category, created_at, updated_at, is_active
		FROM products
		WHERE id = $1 AND is_active = TRUE
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description,
		&p.Price, &p.Category, &p.CreatedAt, &p.UpdatedAt, &p.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return result.NotFound[model.Product](fmt.Sprintf("Product with ID %d not found", id))
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return result.Failure[model.Product](
			fmt.Sprintf("An error occurred while retrieving product with ID %d", id), 500)
	}

	return result.Success(p)
}

// Create inserts a new product and assigns its identity.
func (r *productRepository) Create(ctx context.Context, product model.Product) result.Result[model.Product] {
	if dup := r.checkDuplicateName(ctx, product.Name, nil); !dup.IsSuccess() {
		return result.FailureFrom[model.Product](dup)
	}

	query := `
		INSERT INTO products (name, description, price, category, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, product.Name, product.Description,
		product.Price, product.Category, product.CreatedAt).Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_name", product.Name).Msg("failed to insert product")
		return result.Failure[model.Product]("An error occurred while creating the product", 500)
	}

	r.logger.Info().Int("product_id", product.ID).Msg("product created")
	return result.Created(product)
}

// Update replaces the mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, product model.Product) result.Result[bool] {
	existing := r.GetByID(ctx, product.ID)
	if !existing.IsSuccess() {
		return result.NotFound[bool](fmt.Sprintf("Product with ID %d not found", product.ID))
	}

	if dup := r.checkDuplicateName(ctx, product.Name, &product.ID); !dup.IsSuccess() {
		return result.FailureFrom[bool](dup)
	}

	query := `
		UPDATE products
		SET name = $2,
		    description = $3,
		    price = $4,
		    category = $5,
		    updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, product.ID, product.Name, product.Description,
		product.Price, product.Category, product.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", product.ID).Msg("failed to update product")
		return result.Failure[bool]("An error occurred while updating the product", 500)
	}

	if tag.RowsAffected() == 0 {
		return result.Failure[bool]("Product could not be updated", 500)
	}

	r.logger.Info().Int("product_id", product.ID).Msg("product updated")
	return result.Success(true)
}

// Delete soft-deletes a product by flipping its active flag.
func (r *productRepository) Delete(ctx context.Context, id int) result.Result[bool] {
	existing := r.GetByID(ctx, id)
	if !existing.IsSuccess() {
		return result.NotFound[bool](fmt.Sprintf("Product with ID %d not found", id))
	}

	query := `UPDATE products SET is_active = FALSE, updated_at = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return result.Failure[bool]("An error occurred while deleting the product", 500)
	}

	if tag.RowsAffected() == 0 {
		return result.Failure[bool]("Product could not be deleted", 500)
	}

	r.logger.Info().Int("product_id", id).Msg("product deleted")
	return result.Success(true)
}

// checkDuplicateName rejects a name already used by another active product.
// excludeID skips the product's own row on update.
func (r *productRepository) checkDuplicateName(ctx context.Context, name string, excludeID *int) result.Result[bool] {
	query := `SELECT COUNT(1) FROM products WHERE name = $1 AND is_active = TRUE`
	args := []interface{}{name}

	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Error().Err(err).Str("product_name", name).Msg("failed to check duplicate product name")
		return result.Failure[bool]("Error checking product name", 500)
	}

	if count > 0 {
		return result.Failure[bool](fmt.Sprintf("Product with name '%s' already exists", name), 400)
	}

	return result.Success(true)
}
