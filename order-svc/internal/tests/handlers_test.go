package tests

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "anugerah-resto/order-svc/internal/api/http"
	"anugerah-resto/order-svc/internal/domain"
	"anugerah-resto/order-svc/internal/mocks"
	"anugerah-resto/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(orders *mocks.OrderServiceInterface, menus *mocks.MenuServiceInterface, carts *mocks.CartServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Orders: orders, Menus: menus, Carts: carts}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_createOrder(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewMenuServiceInterface(t), mocks.NewCartServiceInterface(t))

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"order_id":"ORD-1","items":[{"menu_id":"es-teh","quantity":2}]}`,
			prepareMocks: func() {
				orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(input service.CreateOrderInput) bool {
					return input.OrderID == "ORD-1" && len(input.Items) == 1
				})).Return(&domain.CreateOrderResult{
					Order:   &domain.Order{OrderID: "ORD-1", Status: domain.OrderPending, Total: 18400},
					Message: "Order ORD-1 created",
				}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"order_id":"ORD-1"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "no_items",
			payload: `{"order_id":"ORD-2"}`,
			prepareMocks: func() {
				orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("service.CreateOrderInput")).
					Return(nil, service.ErrEmptyOrder).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "duplicate_order",
			payload: `{"order_id":"ORD-1","items":[{"menu_id":"es-teh","quantity":1}]}`,
			prepareMocks: func() {
				orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("service.CreateOrderInput")).
					Return(nil, fmt.Errorf("%w: ORD-1", service.ErrDuplicateOrder)).Once()
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(testCase.payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedCode, rec.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getOrder(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewMenuServiceInterface(t), mocks.NewCartServiceInterface(t))

	orders.On("GetOrder", "ORD-404").
		Return(nil, fmt.Errorf("%w: ORD-404", service.ErrOrderNotFound)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_updateOrderStatus(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewMenuServiceInterface(t), mocks.NewCartServiceInterface(t))

	t.Run("terminal_order_conflicts", func(t *testing.T) {
		orders.On("UpdateOrderStatus", mock.Anything, "ORD-1", "preparing").
			Return(nil, fmt.Errorf("%w: completed to preparing", service.ErrInvalidTransition)).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-1/status",
			bytes.NewBufferString(`{"status":"preparing"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing_status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-1/status",
			bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_getOrderQRCode(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewMenuServiceInterface(t), mocks.NewCartServiceInterface(t))

	orders.On("OrderQRCode", "ORD-1").Return([]byte("png-bytes"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-1/qrcode", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestHandler_checkMenuStock(t *testing.T) {
	menus := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mocks.NewOrderServiceInterface(t), menus, mocks.NewCartServiceInterface(t))

	menus.On("CheckMenuStock", mock.Anything, "nasi-goreng", 2).
		Return(&domain.MenuStockCheck{MenuID: "nasi-goreng", Quantity: 2, Available: false}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menus/nasi-goreng/stock?quantity=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":false`)
}

func TestHandler_addCartItem(t *testing.T) {
	carts := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(mocks.NewOrderServiceInterface(t), mocks.NewMenuServiceInterface(t), carts)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "defaults_quantity_to_one",
			payload: `{"menu_id":"es-teh"}`,
			prepareMocks: func() {
				carts.On("AddItem", 1, "es-teh", 1).
					Return(&domain.Cart{ID: 1, Status: domain.CartActive}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing_menu_id",
			payload:      `{"quantity":2}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "closed_cart",
			payload: `{"menu_id":"es-teh","quantity":1}`,
			prepareMocks: func() {
				carts.On("AddItem", 1, "es-teh", 1).
					Return(nil, fmt.Errorf("%w: cart 1 is completed", service.ErrCartClosed)).Once()
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/carts/1/items", bytes.NewBufferString(testCase.payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedCode, rec.Code)
		})
	}
}

func TestHandler_checkoutCart(t *testing.T) {
	carts := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(mocks.NewOrderServiceInterface(t), mocks.NewMenuServiceInterface(t), carts)

	carts.On("Checkout", mock.Anything, 1, mock.AnythingOfType("service.CreateOrderInput")).
		Return(&domain.CreateOrderResult{
			Order:   &domain.Order{OrderID: "ORD-9", Status: domain.OrderPending},
			Message: "Order ORD-9 created",
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/carts/1/checkout",
		bytes.NewBufferString(`{"payment_method":"qris"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_id":"ORD-9"`)
}
