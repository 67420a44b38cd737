package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "anugerah-resto/reporting-svc/internal/api/http"
	"anugerah-resto/reporting-svc/internal/domain"
	"anugerah-resto/reporting-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter(reports *mocks.ReportsInterface) *mux.Router {
	handler := &httpapi.Handler{Reports: reports}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_dailySales(t *testing.T) {
	reports := mocks.NewReportsInterface(t)
	router := setupTestRouter(reports)

	t.Run("returns_rollup_for_day", func(t *testing.T) {
		reports.On("DailySales", "2026-08-30").Return(&domain.DailySales{
			Day: "2026-08-30", Orders: 42, Cancelled: 3, Revenue: 4525000,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/reports/daily/2026-08-30", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"orders":42`)
	})

	t.Run("rejects_malformed_day", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/daily/yesterday", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_topCustomers(t *testing.T) {
	reports := mocks.NewReportsInterface(t)
	router := setupTestRouter(reports)

	reports.On("TopCustomers", 5).Return([]domain.CustomerSpend{
		{CustomerID: "CUST-1", Total: 1250000},
		{CustomerID: "CUST-2", Total: 900000},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/top-customers?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customer_id":"CUST-1"`)
}
