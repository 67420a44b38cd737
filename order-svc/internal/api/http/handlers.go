package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"anugerah-resto/order-svc/internal/domain"
	"anugerah-resto/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
	Menus  service.MenuServiceInterface
	Carts  service.CartServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, menus service.MenuServiceInterface, carts service.CartServiceInterface) *Handler {
	return &Handler{Orders: orders, Menus: menus, Carts: carts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{orderId}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/send-to-kitchen", h.sendToKitchen).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus", h.listMenus).Methods("GET")
	r.HandleFunc("/api/menus/{menuId}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menus/{menuId}", h.updateMenu).Methods("PUT")
	r.HandleFunc("/api/menus/{menuId}/availability", h.setMenuAvailability).Methods("PUT")
	r.HandleFunc("/api/menus/{menuId}/stock", h.checkMenuStock).Methods("GET")

	r.HandleFunc("/api/carts", h.createCart).Methods("POST")
	r.HandleFunc("/api/carts/{id}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{id}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/carts/{id}/items/{menuId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/carts/{id}/checkout", h.checkoutCart).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Orders.CreateOrder(r.Context(), input)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	orders, err := h.Orders.ListOrders(r.URL.Query().Get("status"), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(mux.Vars(r)["orderId"])
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.Orders.UpdateOrderStatus(r.Context(), mux.Vars(r)["orderId"], payload.Status)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.CancelOrder(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) sendToKitchen(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.SendToKitchen(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.OrderQRCode(mux.Vars(r)["orderId"])
	if err != nil {
		writeOrderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var menu domain.Menu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menus.CreateMenu(&menu); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	availableOnly := r.URL.Query().Get("available") == "true"
	menus, err := h.Menus.ListMenus(r.URL.Query().Get("category"), availableOnly)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if menus == nil {
		menus = []domain.Menu{}
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.GetMenu(mux.Vars(r)["menuId"])
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	var menu domain.Menu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	menu.MenuID = mux.Vars(r)["menuId"]

	if err := h.Menus.UpdateMenu(&menu); err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) setMenuAvailability(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	menu, err := h.Menus.SetAvailability(mux.Vars(r)["menuId"], payload.Available)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) checkMenuStock(w http.ResponseWriter, r *http.Request) {
	quantity, _ := strconv.Atoi(r.URL.Query().Get("quantity"))
	check, err := h.Menus.CheckMenuStock(r.Context(), mux.Vars(r)["menuId"], quantity)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerID  string `json:"customer_id"`
		TableNumber int    `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.CreateCart(payload.CustomerID, payload.TableNumber)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid cart ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.GetCart(cartID)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid cart ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		MenuID   string `json:"menu_id"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.MenuID == "" {
		http.Error(w, "Missing menu_id", http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	cart, err := h.Carts.AddItem(cartID, payload.MenuID, payload.Quantity)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cartID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid cart ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.UpdateItemQuantity(cartID, vars["menuId"], payload.Quantity)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) checkoutCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid cart ID", http.StatusBadRequest)
		return
	}

	var input service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Carts.Checkout(r.Context(), cartID, input)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrMenuNotFound),
		errors.Is(err, service.ErrCartNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrCartEmpty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDuplicateOrder),
		errors.Is(err, service.ErrMenuUnavailable),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrCartClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
