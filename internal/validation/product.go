package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/result"
)

// MaxPrice is the upper bound for a product price.
const MaxPrice = 1_000_000

// ValidateProduct checks a creation request against the catalog business
// rules. All violations are collected in a fixed order rather than stopping
// at the first one; only the name checks form an else-chain, so an empty name
// does not also report a length violation.
func ValidateProduct(req model.CreateProductRequest) result.Result[bool] {
	var violations []string

	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, "Product name is required")
	} else if utf8.RuneCountInString(req.Name) < 3 {
		violations = append(violations, "Product name must be at least 3 characters")
	} else if utf8.RuneCountInString(req.Name) > 200 {
		violations = append(violations, "Product name cannot exceed 200 characters")
	}

	if req.Price <= 0 {
		violations = append(violations, "Price must be greater than 0")
	}

	if req.Price > MaxPrice {
		violations = append(violations, "Price cannot exceed 1,000,000")
	}

	if req.Category != "" && utf8.RuneCountInString(req.Category) > 100 {
		violations = append(violations, "Category cannot exceed 100 characters")
	}

	if len(violations) > 0 {
		return result.ValidationFailure[bool](violations)
	}

	return result.Success(true)
}
