package domain

import "time"

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

const (
	CartActive    = "active"
	CartCompleted = "completed"
	CartAbandoned = "abandoned"
)

// SagaStep records the outcome of one downstream call made while creating
// an order. The full log is persisted on the order so a failed fulfillment
// can be diagnosed after the fact.
type SagaStep struct {
	Step   string `json:"step"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

const (
	StepOK     = "ok"
	StepFailed = "failed"
	StepSkip   = "skipped"
)

// IngredientRequirement maps a menu item to the stock it consumes per
// serving.
type IngredientRequirement struct {
	IngredientID int     `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type Menu struct {
	ID          int                     `json:"id"`
	MenuID      string                  `json:"menu_id"`
	Name        string                  `json:"name"`
	Category    string                  `json:"category"`
	Price       float64                 `json:"price"`
	Description string                  `json:"description,omitempty"`
	Available   bool                    `json:"available"`
	PrepMinutes int                     `json:"prep_minutes,omitempty"`
	Ingredients []IngredientRequirement `json:"ingredients,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type OrderItem struct {
	MenuID   string  `json:"menu_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

type Order struct {
	ID                int         `json:"id"`
	OrderID           string      `json:"order_id"`
	CustomerID        string      `json:"customer_id,omitempty"`
	CustomerName      string      `json:"customer_name,omitempty"`
	TableNumber       int         `json:"table_number,omitempty"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Tax               float64     `json:"tax"`
	ServiceCharge     float64     `json:"service_charge"`
	Discount          float64     `json:"discount"`
	LoyaltyPointsUsed int         `json:"loyalty_points_used"`
	PointsEarned      int         `json:"points_earned"`
	Total             float64     `json:"total"`
	PaymentMethod     string      `json:"payment_method,omitempty"`
	PaymentStatus     string      `json:"payment_status"`
	Status            string      `json:"status"`
	KitchenStatus     string      `json:"kitchen_status,omitempty"`

	KitchenOrderCreated bool `json:"kitchen_order_created"`
	StockUpdated        bool `json:"stock_updated"`
	LoyaltyUpdated      bool `json:"loyalty_updated"`

	Steps       []SagaStep `json:"steps,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateOrderResult is what the create endpoint returns: the stored order
// plus a human summary of how fulfillment went.
type CreateOrderResult struct {
	Order   *Order `json:"order"`
	Message string `json:"message"`
}

type CartItem struct {
	MenuID   string  `json:"menu_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	ID          int        `json:"id"`
	CustomerID  string     `json:"customer_id,omitempty"`
	TableNumber int        `json:"table_number,omitempty"`
	Status      string     `json:"status"`
	Items       []CartItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// MenuStockCheck aggregates per-ingredient availability for a menu item.
type MenuStockCheck struct {
	MenuID      string                 `json:"menu_id"`
	Quantity    int                    `json:"quantity"`
	Available   bool                   `json:"available"`
	Ingredients []IngredientStockCheck `json:"ingredients"`
}

type IngredientStockCheck struct {
	IngredientID int     `json:"ingredient_id"`
	Required     float64 `json:"required"`
	CurrentStock float64 `json:"current_stock"`
	Available    bool    `json:"available"`
	Message      string  `json:"message,omitempty"`
}

// OrderEvent is published to Kafka on order lifecycle changes.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}
