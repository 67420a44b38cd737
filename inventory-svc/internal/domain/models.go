package domain

import "time"

const (
	IngredientActive     = "active"
	IngredientInactive   = "inactive"
	IngredientOutOfStock = "out_of_stock"
)

const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

type Ingredient struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Unit          string    `json:"unit"`
	Category      string    `json:"category"`
	MinStockLevel float64   `json:"min_stock_level"`
	CurrentStock  float64   `json:"current_stock"`
	CostPerUnit   float64   `json:"cost_per_unit"`
	SupplierID    int       `json:"supplier_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StatusAfterDebit derives the ingredient status once a debit lands.
// Stock reaching zero marks the ingredient out_of_stock; a manually
// inactive ingredient keeps its flag regardless of the balance.
func StatusAfterDebit(prior string, remaining float64) string {
	if remaining <= 0 && prior != IngredientInactive {
		return IngredientOutOfStock
	}
	return prior
}

// StatusAfterCredit flips an out_of_stock ingredient back to active once
// the balance is positive again. Inactive stays inactive until it is
// re-enabled by hand.
func StatusAfterCredit(prior string, remaining float64) string {
	if prior == IngredientOutOfStock && remaining > 0 {
		return IngredientActive
	}
	return prior
}

// StockMovement is an immutable ledger entry. The ingredient's current
// stock is a materialized aggregate; the movement log is ground truth.
type StockMovement struct {
	ID            int       `json:"id"`
	IngredientID  int       `json:"ingredient_id"`
	MovementType  string    `json:"movement_type"`
	Quantity      float64   `json:"quantity"`
	Reason        string    `json:"reason,omitempty"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	ReferenceType string    `json:"reference_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type StockCheck struct {
	Available         bool    `json:"available"`
	CurrentStock      float64 `json:"current_stock"`
	RequestedQuantity float64 `json:"requested_quantity"`
	Message           string  `json:"message"`
}

type Supplier struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PurchaseOrder struct {
	ID          int                 `json:"id"`
	SupplierID  int                 `json:"supplier_id"`
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	Notes       string              `json:"notes,omitempty"`
	Items       []PurchaseOrderItem `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type PurchaseOrderItem struct {
	ID               int     `json:"id"`
	PurchaseOrderID  int     `json:"purchase_order_id"`
	IngredientID     int     `json:"ingredient_id"`
	Quantity         float64 `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	TotalPrice       float64 `json:"total_price"`
	ReceivedQuantity float64 `json:"received_quantity"`
}

// GrocerProduct is a catalog entry at the partner grocery shop.
type GrocerProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
	Available bool    `json:"available"`
}

type GrocerOrder struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

// MovementEvent is published to Kafka for every ledger entry.
type MovementEvent struct {
	Type          string    `json:"type"`
	IngredientID  int       `json:"ingredient_id"`
	MovementType  string    `json:"movement_type"`
	Quantity      float64   `json:"quantity"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	ReferenceType string    `json:"reference_type,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
