package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"anugerah-resto/loyalty-svc/internal/domain"
	"anugerah-resto/loyalty-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Loyalty service.LoyaltyServiceInterface
}

func NewHandler(loyalty service.LoyaltyServiceInterface) *Handler {
	return &Handler{Loyalty: loyalty}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/loyalty/enroll", h.enroll).Methods("POST")
	r.HandleFunc("/api/loyalty/earn", h.earnPoints).Methods("POST")
	r.HandleFunc("/api/loyalty/redeem", h.redeemPoints).Methods("POST")
	r.HandleFunc("/api/loyalty/{customerId}", h.getAccount).Methods("GET")
	r.HandleFunc("/api/loyalty/{customerId}/transactions", h.history).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "loyalty-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerID string `json:"customer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.CustomerID == "" {
		http.Error(w, "Missing customer_id", http.StatusBadRequest)
		return
	}

	account, err := h.Loyalty.Enroll(payload.CustomerID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyEnrolled) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *Handler) earnPoints(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerID  string `json:"customer_id"`
		Points      int    `json:"points"`
		OrderID     string `json:"order_id"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.Loyalty.EarnPoints(payload.CustomerID, payload.Points, payload.OrderID, payload.Description)
	if err != nil {
		writeLoyaltyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) redeemPoints(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerID  string `json:"customer_id"`
		Points      int    `json:"points"`
		OrderID     string `json:"order_id"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.Loyalty.RedeemPoints(payload.CustomerID, payload.Points, payload.OrderID, payload.Description)
	if err != nil {
		writeLoyaltyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.Loyalty.GetAccount(mux.Vars(r)["customerId"])
	if err != nil {
		writeLoyaltyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Loyalty.History(mux.Vars(r)["customerId"])
	if err != nil {
		writeLoyaltyError(w, err)
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func writeLoyaltyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotEnrolled):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidPoints):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInsufficientPoints), errors.Is(err, service.ErrAlreadyEnrolled):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
