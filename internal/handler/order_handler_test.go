package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinehub/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateLineItemStatus(ctx context.Context, orderID string, req *model.UpdateLineItemStatusRequest) (*model.Order, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func orderRouter(svc *MockOrderService) http.Handler {
	r := chi.NewRouter()
	NewOrderHandler(svc, zerolog.Nop()).RegisterRoutes(r)
	return r
}

func testOrder() *model.Order {
	return &model.Order{
		OrderID: "order-1",
		CustomerDetails: model.CustomerDetails{
			FullName: "Jane Doe",
			Phone:    "07123456789",
		},
		Items: []model.LineItem{
			{MenuItemID: "A", Quantity: 2, Status: model.StatusPending},
		},
		TotalPrice: 200,
		Status:     model.StatusPending,
	}
}

func TestOrderHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name: "Success",
			requestBody: &model.CreateOrderRequest{
				CustomerDetails: model.CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"},
				Items:           []model.LineItemRequest{{MenuItemID: "A", Quantity: 2}},
			},
			mockReturn:     testOrder(),
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name: "Invalid customer details",
			requestBody: &model.CreateOrderRequest{
				CustomerDetails: model.CustomerDetails{FullName: "Jo", Phone: "07123456789"},
			},
			mockError:      model.ErrInvalidCustomerName,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name: "Menu item not found",
			requestBody: &model.CreateOrderRequest{
				CustomerDetails: model.CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"},
				Items:           []model.LineItemRequest{{MenuItemID: "GONE", Quantity: 1}},
			},
			mockError:      model.ErrMenuItemNotFound,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Malformed JSON",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name: "Persistence failure",
			requestBody: &model.CreateOrderRequest{
				CustomerDetails: model.CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"},
			},
			mockError:      errors.New("write failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.expectService {
				svc.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.CreateOrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", &body)
			rec := httptest.NewRecorder()

			orderRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var got model.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "order-1", got.OrderID)
				assert.Equal(t, 200.0, got.TotalPrice)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_UpdateLineItemStatus(t *testing.T) {
	tests := []struct {
		name           string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			mockReturn:     testOrder(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Order not found",
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Line item not found",
			mockError:      model.ErrLineItemNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid status",
			mockError:      model.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Conflict after retries",
			mockError:      model.ErrOrderConflict,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			svc.On("UpdateLineItemStatus", mock.Anything, "order-1", mock.AnythingOfType("*model.UpdateLineItemStatusRequest")).
				Return(tt.mockReturn, tt.mockError)

			body := bytes.NewBufferString(`{"menuItemId":"A","status":"COMPLETE"}`)
			req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/items/status", body)
			rec := httptest.NewRecorder()

			orderRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetByID", mock.Anything, "order-1").Return(testOrder(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
		rec := httptest.NewRecorder()

		orderRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetByID", mock.Anything, "nope").Return(nil, model.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/nope", nil)
		rec := httptest.NewRecorder()

		orderRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("List", mock.Anything).Return([]model.Order{*testOrder()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	orderRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}
