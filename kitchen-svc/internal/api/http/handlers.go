package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"anugerah-resto/kitchen-svc/internal/domain"
	"anugerah-resto/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Kitchen service.KitchenServiceInterface
}

func NewHandler(kitchen service.KitchenServiceInterface) *Handler {
	return &Handler{Kitchen: kitchen}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/tickets", h.createTicket).Methods("POST")
	r.HandleFunc("/api/tickets", h.listTickets).Methods("GET")
	r.HandleFunc("/api/tickets/by-order/{orderId}", h.getTicketByOrder).Methods("GET")
	r.HandleFunc("/api/tickets/{id}", h.getTicket).Methods("GET")
	r.HandleFunc("/api/tickets/{id}/status", h.updateStatus).Methods("PUT")
	r.HandleFunc("/api/tickets/{id}/assign", h.assignChef).Methods("POST")
	r.HandleFunc("/api/tickets/{id}/complete", h.completeTicket).Methods("POST")
	r.HandleFunc("/api/tickets/{id}/cancel", h.cancelTicket).Methods("POST")
	r.HandleFunc("/api/tickets/{id}/estimated-time", h.updateEstimatedTime).Methods("PUT")

	r.HandleFunc("/api/chefs", h.createChef).Methods("POST")
	r.HandleFunc("/api/chefs", h.listChefs).Methods("GET")
	r.HandleFunc("/api/chefs/{id}", h.getChef).Methods("GET")
	r.HandleFunc("/api/chefs/{id}/tickets", h.listChefTickets).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	var ticket domain.Ticket
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if ticket.OrderID == "" || len(ticket.Items) == 0 {
		http.Error(w, "Missing order_id or items", http.StatusBadRequest)
		return
	}

	if err := h.Kitchen.CreateTicket(r.Context(), &ticket); err != nil {
		if errors.Is(err, service.ErrDuplicateTicket) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Kitchen.ListTickets(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *Handler) getTicket(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ticket, err := h.Kitchen.GetTicket(id)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) getTicketByOrder(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.Kitchen.GetTicketByOrderID(mux.Vars(r)["orderId"])
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "Missing status", http.StatusBadRequest)
		return
	}

	ticket, err := h.Kitchen.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) assignChef(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		ChefID int `json:"chef_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ChefID == 0 {
		http.Error(w, "Missing chef_id", http.StatusBadRequest)
		return
	}

	ticket, err := h.Kitchen.AssignChef(r.Context(), id, payload.ChefID)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) completeTicket(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ticket, err := h.Kitchen.CompleteTicket(r.Context(), id)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) cancelTicket(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ticket, err := h.Kitchen.CancelTicket(r.Context(), id)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) updateEstimatedTime(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ticket, err := h.Kitchen.UpdateEstimatedTime(id, payload.Minutes)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) createChef(w http.ResponseWriter, r *http.Request) {
	var chef domain.Chef
	if err := json.NewDecoder(r.Body).Decode(&chef); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if chef.Name == "" {
		http.Error(w, "Missing chef name", http.StatusBadRequest)
		return
	}

	if err := h.Kitchen.CreateChef(&chef); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, chef)
}

func (h *Handler) getChef(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	chef, err := h.Kitchen.GetChef(id)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chef)
}

func (h *Handler) listChefs(w http.ResponseWriter, r *http.Request) {
	chefs, err := h.Kitchen.ListChefs(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if chefs == nil {
		chefs = []domain.Chef{}
	}
	writeJSON(w, http.StatusOK, chefs)
}

func (h *Handler) listChefTickets(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	tickets, err := h.Kitchen.ListTicketsByChef(id)
	if err != nil {
		writeKitchenError(w, err)
		return
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

func writeKitchenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTicketNotFound), errors.Is(err, service.ErrChefNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrDuplicateTicket):
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
