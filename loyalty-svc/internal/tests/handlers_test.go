package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "anugerah-resto/loyalty-svc/internal/api/http"
	"anugerah-resto/loyalty-svc/internal/domain"
	"anugerah-resto/loyalty-svc/internal/mocks"
	"anugerah-resto/loyalty-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter(loyalty *mocks.LoyaltyServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Loyalty: loyalty}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_earnPoints(t *testing.T) {
	loyalty := mocks.NewLoyaltyServiceInterface(t)
	router := setupTestRouter(loyalty)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"customer_id":"cust-1","points":25,"order_id":"ORD-001"}`,
			prepareMocks: func() {
				loyalty.On("EarnPoints", "cust-1", 25, "ORD-001", "").
					Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 125, Tier: domain.TierBronze}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"total_points":125`,
		},
		{
			name:    "not_enrolled",
			payload: `{"customer_id":"ghost","points":25}`,
			prepareMocks: func() {
				loyalty.On("EarnPoints", "ghost", 25, "", "").
					Return(nil, service.ErrNotEnrolled).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "invalid_points",
			payload: `{"customer_id":"cust-1","points":0}`,
			prepareMocks: func() {
				loyalty.On("EarnPoints", "cust-1", 0, "", "").
					Return(nil, service.ErrInvalidPoints).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/loyalty/earn", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_redeemPoints_Insufficient(t *testing.T) {
	loyalty := mocks.NewLoyaltyServiceInterface(t)
	router := setupTestRouter(loyalty)

	loyalty.On("RedeemPoints", "cust-1", 999, "", "").
		Return(nil, service.ErrInsufficientPoints).Once()

	req := httptest.NewRequest("POST", "/api/loyalty/redeem",
		bytes.NewBufferString(`{"customer_id":"cust-1","points":999}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_redeemPoints_ForwardsOrderID(t *testing.T) {
	loyalty := mocks.NewLoyaltyServiceInterface(t)
	router := setupTestRouter(loyalty)

	loyalty.On("RedeemPoints", "cust-1", 50, "ORD-12", "Order discount").
		Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 300, RedeemedPoints: 150}, nil).Once()

	req := httptest.NewRequest("POST", "/api/loyalty/redeem",
		bytes.NewBufferString(`{"customer_id":"cust-1","points":50,"order_id":"ORD-12","description":"Order discount"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_getAccount(t *testing.T) {
	loyalty := mocks.NewLoyaltyServiceInterface(t)
	router := setupTestRouter(loyalty)

	loyalty.On("GetAccount", "cust-1").
		Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 600, RedeemedPoints: 100, Tier: domain.TierGold}, nil).Once()

	req := httptest.NewRequest("GET", "/api/loyalty/cust-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"tier":"gold"`)
}
