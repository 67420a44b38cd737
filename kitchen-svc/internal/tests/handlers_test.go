package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "anugerah-resto/kitchen-svc/internal/api/http"
	"anugerah-resto/kitchen-svc/internal/domain"
	"anugerah-resto/kitchen-svc/internal/mocks"
	"anugerah-resto/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(kitchen *mocks.KitchenServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Kitchen: kitchen}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_createTicket(t *testing.T) {
	kitchen := mocks.NewKitchenServiceInterface(t)
	router := setupTestRouter(kitchen)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"order_id":"ORD-001","items":[{"menu_id":"nasi-goreng","name":"Nasi Goreng","quantity":2}]}`,
			prepareMocks: func() {
				kitchen.On("CreateTicket", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "duplicate",
			payload: `{"order_id":"ORD-001","items":[{"menu_id":"nasi-goreng","name":"Nasi Goreng","quantity":2}]}`,
			prepareMocks: func() {
				kitchen.On("CreateTicket", mock.Anything, mock.Anything).
					Return(service.ErrDuplicateTicket).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "missing_items",
			payload:      `{"order_id":"ORD-001"}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/tickets", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_assignChef(t *testing.T) {
	kitchen := mocks.NewKitchenServiceInterface(t)
	router := setupTestRouter(kitchen)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"chef_id":2}`,
			prepareMocks: func() {
				kitchen.On("AssignChef", mock.Anything, 1, 2).
					Return(&domain.Ticket{ID: 1, Status: domain.TicketPreparing, ChefID: 2}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "chef_not_found",
			payload: `{"chef_id":99}`,
			prepareMocks: func() {
				kitchen.On("AssignChef", mock.Anything, 1, 99).
					Return(nil, service.ErrChefNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "not_pending",
			payload: `{"chef_id":2}`,
			prepareMocks: func() {
				kitchen.On("AssignChef", mock.Anything, 1, 2).
					Return(nil, service.ErrInvalidTransition).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "missing_chef_id",
			payload:      `{}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/tickets/1/assign", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_updateStatus_TerminalConflict(t *testing.T) {
	kitchen := mocks.NewKitchenServiceInterface(t)
	router := setupTestRouter(kitchen)

	kitchen.On("UpdateStatus", mock.Anything, 1, domain.TicketPreparing).
		Return(nil, service.ErrInvalidTransition).Once()

	req := httptest.NewRequest("PUT", "/api/tickets/1/status", bytes.NewBufferString(`{"status":"preparing"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_getTicketByOrder(t *testing.T) {
	kitchen := mocks.NewKitchenServiceInterface(t)
	router := setupTestRouter(kitchen)

	kitchen.On("GetTicketByOrderID", "ORD-001").
		Return(&domain.Ticket{ID: 1, OrderID: "ORD-001", Status: domain.TicketPending}, nil).Once()

	req := httptest.NewRequest("GET", "/api/tickets/by-order/ORD-001", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"order_id":"ORD-001"`)
}
