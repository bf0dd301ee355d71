package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ZawHtut01/ProductCatalog/internal/model"
	"github.com/ZawHtut01/ProductCatalog/internal/result"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context) result.Result[[]model.ProductResponse] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[[]model.ProductResponse])
}

func (m *MockProductService) GetByID(ctx context.Context, id int) result.Result[model.ProductResponse] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[model.ProductResponse])
}

func (m *MockProductService) Create(ctx context.Context, req model.CreateProductRequest) result.Result[model.ProductResponse] {
	args := m.Called(ctx, req)
	return args.Get(0).(result.Result[model.ProductResponse])
}

func (m *MockProductService) Update(ctx context.Context, req model.UpdateProductRequest) result.Result[bool] {
	args := m.Called(ctx, req)
	return args.Get(0).(result.Result[bool])
}

func (m *MockProductService) Delete(ctx context.Context, id int) result.Result[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[bool])
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.ProductResponse{
		{ID: 1, Name: "Widget", Price: 25.0, CreatedAt: time.Now().UTC()},
		{ID: 2, Name: "Gadget", Price: 12.5, CreatedAt: time.Now().UTC()},
	}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("GetAll", mock.Anything).Return(result.Success(testProducts))

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		handler.GetAll(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var decoded []model.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		assert.Len(t, decoded, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure renders uniform error response", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("GetAll", mock.Anything).
			Return(result.Failure[[]model.ProductResponse]("An error occurred while retrieving products", 500))

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		handler.GetAll(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeErrorResponse(t, w)
		assert.Equal(t, "An error occurred while retrieving products", resp.Message)
		assert.Equal(t, model.ErrCodeDatabaseError, resp.ErrorCode)
		mockService.AssertExpectations(t)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := model.ProductResponse{ID: 1, Name: "Widget", Price: 25.0, CreatedAt: time.Now().UTC()}

	tests := []struct {
		name           string
		path           string
		mockReturn     *result.Result[model.ProductResponse]
		expectedStatus int
		expectedCode   string
		productID      int
	}{
		{
			name:           "Success",
			path:           "/api/products/1",
			mockReturn:     ptr(result.Success(testProduct)),
			expectedStatus: http.StatusOK,
			productID:      1,
		},
		{
			name:           "Not found",
			path:           "/api/products/99",
			mockReturn:     ptr(result.NotFound[model.ProductResponse]("Product with ID 99 not found")),
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
			productID:      99,
		},
		{
			name:           "Missing ID",
			path:           "/api/products/",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidationError,
		},
		{
			name:           "Non-numeric ID",
			path:           "/api/products/abc",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.mockReturn != nil {
				mockService.On("GetByID", mock.Anything, tt.productID).Return(*tt.mockReturn)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				resp := decodeErrorResponse(t, w)
				assert.Equal(t, tt.expectedCode, resp.ErrorCode)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success returns 201 with payload", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		created := model.ProductResponse{ID: 1, Name: "Widget", Price: 25.0, CreatedAt: time.Now().UTC()}
		mockService.On("Create", mock.Anything, model.CreateProductRequest{Name: "Widget", Price: 25.0}).
			Return(result.Created(created))

		body := strings.NewReader(`{"name": "Widget", "price": 25.0}`)
		req := httptest.NewRequest(http.MethodPost, "/api/products", body)
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var decoded model.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		assert.Equal(t, 1, decoded.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Validation failure carries ordered violations", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		violations := []string{"Product name must be at least 3 characters"}
		mockService.On("Create", mock.Anything, mock.Anything).
			Return(result.ValidationFailure[model.ProductResponse](violations))

		body := strings.NewReader(`{"name": "AB", "price": 10}`)
		req := httptest.NewRequest(http.MethodPost, "/api/products", body)
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeErrorResponse(t, w)
		assert.Equal(t, model.ErrCodeValidationError, resp.ErrorCode)
		assert.Equal(t, violations, resp.ValidationErrors["product"])
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed JSON rejected before the service", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		body := strings.NewReader(`{"name": `)
		req := httptest.NewRequest(http.MethodPost, "/api/products", body)
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeErrorResponse(t, w)
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.ErrorCode)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Update", mock.Anything, model.UpdateProductRequest{ID: 1, Name: "Widget v2", Price: 30.0}).
			Return(result.Success(true))

		body := strings.NewReader(`{"name": "Widget v2", "price": 30.0}`)
		req := httptest.NewRequest(http.MethodPut, "/api/products/1", body)
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Path ID overrides body ID", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Update", mock.Anything, mock.MatchedBy(func(req model.UpdateProductRequest) bool {
			return req.ID == 5
		})).Return(result.Success(true))

		body := strings.NewReader(`{"id": 99, "name": "Widget", "price": 25.0}`)
		req := httptest.NewRequest(http.MethodPut, "/api/products/5", body)
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Not found propagated", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Update", mock.Anything, mock.Anything).
			Return(result.NotFound[bool]("Product with ID 99 not found"))

		body := strings.NewReader(`{"name": "Widget", "price": 25.0}`)
		req := httptest.NewRequest(http.MethodPut, "/api/products/99", body)
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeErrorResponse(t, w)
		assert.Equal(t, model.ErrCodeProductNotFound, resp.ErrorCode)
		mockService.AssertExpectations(t)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockReturn     *result.Result[bool]
		expectedStatus int
		productID      int
	}{
		{
			name:           "Success",
			path:           "/api/products/1",
			mockReturn:     ptr(result.Success(true)),
			expectedStatus: http.StatusOK,
			productID:      1,
		},
		{
			name:           "Second delete returns not found",
			path:           "/api/products/1",
			mockReturn:     ptr(result.NotFound[bool]("Product with ID 1 not found")),
			expectedStatus: http.StatusNotFound,
			productID:      1,
		},
		{
			name:           "Invalid ID",
			path:           "/api/products/abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.mockReturn != nil {
				mockService.On("Delete", mock.Anything, tt.productID).Return(*tt.mockReturn)
			}

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
