package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"anugerah-resto/inventory-svc/internal/domain"
	"anugerah-resto/inventory-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stock     service.StockServiceInterface
	Purchases service.PurchaseServiceInterface
}

func NewHandler(stock service.StockServiceInterface, purchases service.PurchaseServiceInterface) *Handler {
	return &Handler{Stock: stock, Purchases: purchases}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/stock/check", h.checkStock).Methods("POST")
	r.HandleFunc("/api/stock/reduce", h.reduceStock).Methods("POST")
	r.HandleFunc("/api/stock/add", h.addStock).Methods("POST")
	r.HandleFunc("/api/stock/movements", h.listMovements).Methods("GET")

	r.HandleFunc("/api/ingredients", h.createIngredient).Methods("POST")
	r.HandleFunc("/api/ingredients", h.listIngredients).Methods("GET")
	r.HandleFunc("/api/ingredients/low-stock", h.lowStock).Methods("GET")
	r.HandleFunc("/api/ingredients/out-of-stock", h.outOfStock).Methods("GET")
	r.HandleFunc("/api/ingredients/{id}", h.getIngredient).Methods("GET")
	r.HandleFunc("/api/ingredients/{id}", h.updateIngredient).Methods("PUT")

	r.HandleFunc("/api/suppliers", h.createSupplier).Methods("POST")
	r.HandleFunc("/api/suppliers", h.listSuppliers).Methods("GET")

	r.HandleFunc("/api/purchase-orders", h.createPurchaseOrder).Methods("POST")
	r.HandleFunc("/api/purchase-orders", h.listPurchaseOrders).Methods("GET")
	r.HandleFunc("/api/purchase-orders/{id}", h.getPurchaseOrder).Methods("GET")
	r.HandleFunc("/api/purchase-orders/{id}/receive", h.receivePurchaseOrder).Methods("POST")

	r.HandleFunc("/api/grocer/products", h.listGrocerProducts).Methods("GET")
	r.HandleFunc("/api/grocer/purchase", h.purchaseFromGrocer).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "inventory-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type stockRequest struct {
	IngredientID  int     `json:"ingredient_id"`
	Quantity      float64 `json:"quantity"`
	Reason        string  `json:"reason"`
	ReferenceID   string  `json:"reference_id"`
	ReferenceType string  `json:"reference_type"`
}

func (h *Handler) checkStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	check, err := h.Stock.CheckAvailability(req.IngredientID, req.Quantity)
	if err != nil {
		writeStockError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (h *Handler) reduceStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mv, err := h.Stock.Debit(r.Context(), req.IngredientID, req.Quantity, req.Reason, req.ReferenceID, req.ReferenceType)
	if err != nil {
		writeStockError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mv)
}

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mv, err := h.Stock.Credit(r.Context(), req.IngredientID, req.Quantity, req.Reason, req.ReferenceID, req.ReferenceType)
	if err != nil {
		writeStockError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mv)
}

func (h *Handler) listMovements(w http.ResponseWriter, r *http.Request) {
	ingredientID, _ := strconv.Atoi(r.URL.Query().Get("ingredient_id"))
	movements, err := h.Stock.ListMovements(ingredientID, r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if movements == nil {
		movements = []domain.StockMovement{}
	}
	writeJSON(w, http.StatusOK, movements)
}

func (h *Handler) createIngredient(w http.ResponseWriter, r *http.Request) {
	var ing domain.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if ing.Name == "" || ing.Unit == "" {
		http.Error(w, "Missing name or unit", http.StatusBadRequest)
		return
	}
	if ing.Status == "" {
		ing.Status = domain.IngredientActive
	}

	if err := h.Stock.CreateIngredient(&ing); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ing)
}

func (h *Handler) updateIngredient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var ing domain.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ing.ID = id

	if err := h.Stock.UpdateIngredient(&ing); err != nil {
		writeStockError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ing)
}

func (h *Handler) getIngredient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ing, err := h.Stock.GetIngredient(id)
	if err != nil {
		writeStockError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ing)
}

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.Stock.ListIngredients(r.URL.Query().Get("category"), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.Stock.LowStock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (h *Handler) outOfStock(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.Stock.OutOfStock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var supplier domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if supplier.Name == "" {
		http.Error(w, "Missing supplier name", http.StatusBadRequest)
		return
	}

	if err := h.Purchases.CreateSupplier(&supplier); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, supplier)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Purchases.ListSuppliers(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}
	writeJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var po domain.PurchaseOrder
	if err := json.NewDecoder(r.Body).Decode(&po); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if po.SupplierID == 0 || po.OrderNumber == "" || len(po.Items) == 0 {
		http.Error(w, "Missing supplier_id, order_number or items", http.StatusBadRequest)
		return
	}

	if err := h.Purchases.CreatePurchaseOrder(&po); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, po)
}

func (h *Handler) getPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	po, err := h.Purchases.GetPurchaseOrder(id)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, po)
}

func (h *Handler) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Purchases.ListPurchaseOrders(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.PurchaseOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) receivePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	po, err := h.Purchases.ReceivePurchaseOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, po)
}

func (h *Handler) listGrocerProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Purchases.ListGrocerProducts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if products == nil {
		products = []domain.GrocerProduct{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) purchaseFromGrocer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderNumber string                      `json:"order_number"`
		Items       []service.GrocerPurchaseItem `json:"items"`
		Notes       string                      `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.OrderNumber == "" || len(req.Items) == 0 {
		http.Error(w, "Missing order_number or items", http.StatusBadRequest)
		return
	}

	po, err := h.Purchases.PurchaseFromGrocer(r.Context(), req.OrderNumber, req.Items, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrGrocerStockShort) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, po)
}

func writeStockError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrIngredientNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInsufficientStock):
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
