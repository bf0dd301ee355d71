package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetAll(r.Context())
	if !res.IsSuccess() {
		writeFailure(w, res.StatusCode(), res.ErrorMessage(), res.ValidationErrors(), h.logger)
		return
	}

	writeJSON(w, res.StatusCode(), res.Data())
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	res := h.service.GetByID(r.Context(), id)
	if !res.IsSuccess() {
		writeFailure(w, res.StatusCode(), res.ErrorMessage(), res.ValidationErrors(), h.logger)
		return
	}

	writeJSON(w, res.StatusCode(), res.Data())
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", model.ErrCodeInvalidJSON, h.logger)
		return
	}

	res := h.service.Create(r.Context(), req)
	if !res.IsSuccess() {
		writeFailure(w, res.StatusCode(), res.ErrorMessage(), res.ValidationErrors(), h.logger)
		return
	}

	writeJSON(w, res.StatusCode(), res.Data())
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", model.ErrCodeInvalidJSON, h.logger)
		return
	}
	// The path is authoritative for the identity.
	req.ID = id

	res := h.service.Update(r.Context(), req)
	if !res.IsSuccess() {
		writeFailure(w, res.StatusCode(), res.ErrorMessage(), res.ValidationErrors(), h.logger)
		return
	}

	writeJSON(w, res.StatusCode(), res.Data())
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	res := h.service.Delete(r.Context(), id)
	if !res.IsSuccess() {
		writeFailure(w, res.StatusCode(), res.ErrorMessage(), res.ValidationErrors(), h.logger)
		return
	}

	writeJSON(w, res.StatusCode(), res.Data())
}

// productID extracts the integer product ID from /api/products/{id}. It
// writes a 400 response and returns false when the path carries no usable ID.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	path := r.URL.Path
	if len(path) <= len("/api/products/") {
		writeError(w, http.StatusBadRequest, "product ID is required", model.ErrCodeValidationError, h.logger)
		return 0, false
	}
	idStr := path[len("/api/products/"):]

	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", model.ErrCodeValidationError, h.logger)
		return 0, false
	}

	return id, true
}
