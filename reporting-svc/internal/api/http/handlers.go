package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"anugerah-resto/reporting-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Reports service.ReportsInterface
}

func NewHandler(reports service.ReportsInterface) *Handler {
	return &Handler{Reports: reports}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/reports/daily", h.dailySalesToday).Methods("GET")
	r.HandleFunc("/api/reports/daily/{day}", h.dailySales).Methods("GET")
	r.HandleFunc("/api/reports/top-customers", h.topCustomers).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "reporting-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) dailySalesToday(w http.ResponseWriter, r *http.Request) {
	h.writeDailySales(w, time.Now().Format("2006-01-02"))
}

func (h *Handler) dailySales(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]
	if _, err := time.Parse("2006-01-02", day); err != nil {
		http.Error(w, "Invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	h.writeDailySales(w, day)
}

func (h *Handler) writeDailySales(w http.ResponseWriter, day string) {
	sales, err := h.Reports.DailySales(day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *Handler) topCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	customers, err := h.Reports.TopCustomers(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
