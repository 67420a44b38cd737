package clients

import (
	"context"

	"anugerah-resto/order-svc/internal/service"
	"anugerah-resto/rpc"
)

// Inventory calls the inventory service stock API.
type Inventory struct {
	client  *rpc.Client
	baseURL string
}

var _ service.InventoryClient = (*Inventory)(nil)

func NewInventory(client *rpc.Client, baseURL string) *Inventory {
	return &Inventory{client: client, baseURL: baseURL}
}

type stockPayload struct {
	IngredientID  int     `json:"ingredient_id"`
	Quantity      float64 `json:"quantity"`
	Reason        string  `json:"reason,omitempty"`
	ReferenceID   string  `json:"reference_id,omitempty"`
	ReferenceType string  `json:"reference_type,omitempty"`
}

func (i *Inventory) CheckStock(ctx context.Context, ingredientID int, quantity float64) (*service.StockCheckResult, error) {
	var result service.StockCheckResult
	payload := stockPayload{IngredientID: ingredientID, Quantity: quantity}
	if err := i.client.Post(ctx, i.baseURL+"/api/stock/check", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (i *Inventory) ReduceStock(ctx context.Context, ingredientID int, quantity float64, orderID string) error {
	payload := stockPayload{
		IngredientID:  ingredientID,
		Quantity:      quantity,
		Reason:        "Order " + orderID,
		ReferenceID:   orderID,
		ReferenceType: "order",
	}
	return i.client.Post(ctx, i.baseURL+"/api/stock/reduce", payload, nil)
}
