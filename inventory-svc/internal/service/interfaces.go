package service

import (
	"context"

	"anugerah-resto/inventory-svc/internal/domain"
)

type StockServiceInterface interface {
	CheckAvailability(ingredientID int, quantity float64) (*domain.StockCheck, error)
	Debit(ctx context.Context, ingredientID int, quantity float64, reason, referenceID, referenceType string) (*domain.StockMovement, error)
	Credit(ctx context.Context, ingredientID int, quantity float64, reason, referenceID, referenceType string) (*domain.StockMovement, error)
	CreateIngredient(ing *domain.Ingredient) error
	UpdateIngredient(ing *domain.Ingredient) error
	GetIngredient(id int) (*domain.Ingredient, error)
	GetIngredientByName(name string) (*domain.Ingredient, error)
	ListIngredients(category, status string) ([]domain.Ingredient, error)
	LowStock() ([]domain.Ingredient, error)
	OutOfStock() ([]domain.Ingredient, error)
	ListMovements(ingredientID int, movementType string) ([]domain.StockMovement, error)
}

type PurchaseServiceInterface interface {
	CreateSupplier(s *domain.Supplier) error
	ListSuppliers(status string) ([]domain.Supplier, error)
	CreatePurchaseOrder(po *domain.PurchaseOrder) error
	GetPurchaseOrder(id int) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(status string) ([]domain.PurchaseOrder, error)
	ReceivePurchaseOrder(ctx context.Context, id int) (*domain.PurchaseOrder, error)
	ListGrocerProducts(ctx context.Context) ([]domain.GrocerProduct, error)
	PurchaseFromGrocer(ctx context.Context, orderNumber string, items []GrocerPurchaseItem, notes string) (*domain.PurchaseOrder, error)
}

type StockRepository interface {
	CreateIngredient(ing *domain.Ingredient) error
	UpdateIngredient(ing *domain.Ingredient) error
	GetIngredient(id int) (*domain.Ingredient, error)
	GetIngredientByName(name string) (*domain.Ingredient, error)
	ListIngredients(category, status string) ([]domain.Ingredient, error)
	LowStock() ([]domain.Ingredient, error)
	OutOfStock() ([]domain.Ingredient, error)
	// DebitStock applies the guarded decrement and appends the movement in
	// one transaction. applied=false means the availability guard rejected
	// the decrement.
	DebitStock(ingredientID int, quantity float64, mv *domain.StockMovement) (applied bool, err error)
	CreditStock(ingredientID int, quantity float64, mv *domain.StockMovement) error
	GetMovement(id int) (*domain.StockMovement, error)
	ListMovements(ingredientID int, movementType string, limit int) ([]domain.StockMovement, error)
}

type PurchaseRepository interface {
	CreateSupplier(s *domain.Supplier) error
	GetSupplierByName(name string) (*domain.Supplier, error)
	ListSuppliers(status string) ([]domain.Supplier, error)
	CreatePurchaseOrder(po *domain.PurchaseOrder) error
	GetPurchaseOrder(id int) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(status string) ([]domain.PurchaseOrder, error)
	MarkPurchaseOrderReceived(id int) error
	MarkItemReceived(itemID int) error
}

// DebitMarker deduplicates stock debits that carry a reference, so a retried
// order fulfillment cannot drain stock twice.
type DebitMarker interface {
	Key(referenceID string, ingredientID int) string
	Get(ctx context.Context, key string) (movementID int, ok bool, err error)
	Set(ctx context.Context, key string, movementID int) error
}

type MovementPublisher interface {
	PublishMovement(ctx context.Context, evt domain.MovementEvent) error
}

// GrocerClient talks to the partner grocery shop.
type GrocerClient interface {
	ListProducts(ctx context.Context) ([]domain.GrocerProduct, error)
	GetProduct(ctx context.Context, productID string) (*domain.GrocerProduct, error)
	CheckStock(ctx context.Context, productID string, quantity float64) (*domain.StockCheck, error)
	CreateOrder(ctx context.Context, orderNumber string, items []GrocerOrderItem) (*domain.GrocerOrder, error)
}

type GrocerOrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

type GrocerPurchaseItem struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

var (
	_ StockServiceInterface    = (*StockService)(nil)
	_ PurchaseServiceInterface = (*PurchaseService)(nil)
)
