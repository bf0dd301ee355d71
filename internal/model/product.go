package model

import "time"

// Product represents a catalog item. The ID is assigned by storage on
// creation; IsActive is the soft-delete flag and defaults to true.
type Product struct {
	ID          int        `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	Category    string     `json:"category" db:"category"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	IsActive    bool       `json:"isActive" db:"is_active"`
}

// CreateProductRequest represents the request payload for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

// UpdateProductRequest represents the request payload for updating a product.
type UpdateProductRequest struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

// ProductResponse is the external representation of a product. UpdatedAt and
// IsActive are deliberately not exposed.
type ProductResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse maps a product to its external representation.
func (p Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}
