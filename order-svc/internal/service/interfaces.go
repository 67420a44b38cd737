package service

import (
	"context"

	"anugerah-resto/order-svc/internal/domain"
)

// CreateOrderInput carries everything a caller may supply when placing an
// order. Item prices are never trusted from the caller; they are resolved
// from the stored menu.
type CreateOrderInput struct {
	OrderID           string                 `json:"order_id"`
	CustomerID        string                 `json:"customer_id"`
	CustomerName      string                 `json:"customer_name"`
	TableNumber       int                    `json:"table_number"`
	Items             []CreateOrderItemInput `json:"items"`
	PaymentMethod     string                 `json:"payment_method"`
	Discount          float64                `json:"discount"`
	LoyaltyPointsUsed int                    `json:"loyalty_points_used"`
	Notes             string                 `json:"notes"`
}

type CreateOrderItemInput struct {
	MenuID   string `json:"menu_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.CreateOrderResult, error)
	GetOrder(orderID string) (*domain.Order, error)
	ListOrders(status string, limit int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*domain.Order, error)
	SendToKitchen(ctx context.Context, orderID string) (*domain.Order, error)
	OrderQRCode(orderID string) ([]byte, error)
}

type MenuServiceInterface interface {
	CreateMenu(menu *domain.Menu) error
	GetMenu(menuID string) (*domain.Menu, error)
	ListMenus(category string, availableOnly bool) ([]domain.Menu, error)
	UpdateMenu(menu *domain.Menu) error
	SetAvailability(menuID string, available bool) (*domain.Menu, error)
	CheckMenuStock(ctx context.Context, menuID string, quantity int) (*domain.MenuStockCheck, error)
}

type CartServiceInterface interface {
	CreateCart(customerID string, tableNumber int) (*domain.Cart, error)
	GetCart(cartID int) (*domain.Cart, error)
	AddItem(cartID int, menuID string, quantity int) (*domain.Cart, error)
	UpdateItemQuantity(cartID int, menuID string, quantity int) (*domain.Cart, error)
	Checkout(ctx context.Context, cartID int, input CreateOrderInput) (*domain.CreateOrderResult, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	GetOrder(orderID string) (*domain.Order, error)
	ListOrders(status string, limit int) ([]domain.Order, error)
	UpdateOrderOutcome(order *domain.Order) error
	UpdateOrderStatus(orderID, status string, completed bool) (*domain.Order, error)
	UpdateKitchenStatus(orderID, kitchenStatus string) error
	StoreQRCode(orderID string, png []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

type MenuRepository interface {
	InsertMenu(menu *domain.Menu) error
	GetMenu(menuID string) (*domain.Menu, error)
	ListMenus(category string, availableOnly bool) ([]domain.Menu, error)
	UpdateMenu(menu *domain.Menu) error
}

type CartRepository interface {
	InsertCart(cart *domain.Cart) error
	GetCart(cartID int) (*domain.Cart, error)
	UpdateCartItems(cartID int, items []domain.CartItem) error
	SetCartStatus(cartID int, status string) error
}

// KitchenClient talks to the kitchen service.
type KitchenClient interface {
	CreateTicket(ctx context.Context, order *domain.Order) error
	CompleteTicketByOrder(ctx context.Context, orderID string) error
	CancelTicketByOrder(ctx context.Context, orderID string) error
}

// InventoryClient talks to the inventory service.
type InventoryClient interface {
	CheckStock(ctx context.Context, ingredientID int, quantity float64) (*StockCheckResult, error)
	ReduceStock(ctx context.Context, ingredientID int, quantity float64, orderID string) error
}

// StockCheckResult mirrors the inventory service's stock check response.
type StockCheckResult struct {
	Available         bool    `json:"available"`
	CurrentStock      float64 `json:"current_stock"`
	RequestedQuantity float64 `json:"requested_quantity"`
	Message           string  `json:"message"`
}

// LoyaltyClient talks to the loyalty service.
type LoyaltyClient interface {
	EarnPoints(ctx context.Context, customerID string, points int, orderID string) error
	RedeemPoints(ctx context.Context, customerID string, points int, orderID string) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, evt domain.OrderEvent) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
var _ CartServiceInterface = (*CartService)(nil)
