package clients

import (
	"context"

	"anugerah-resto/order-svc/internal/service"
	"anugerah-resto/rpc"
)

// Loyalty calls the loyalty service points API.
type Loyalty struct {
	client  *rpc.Client
	baseURL string
}

var _ service.LoyaltyClient = (*Loyalty)(nil)

func NewLoyalty(client *rpc.Client, baseURL string) *Loyalty {
	return &Loyalty{client: client, baseURL: baseURL}
}

type pointsPayload struct {
	CustomerID  string `json:"customer_id"`
	Points      int    `json:"points"`
	OrderID     string `json:"order_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func (l *Loyalty) EarnPoints(ctx context.Context, customerID string, points int, orderID string) error {
	payload := pointsPayload{
		CustomerID:  customerID,
		Points:      points,
		OrderID:     orderID,
		Description: "Order " + orderID,
	}
	return l.client.Post(ctx, l.baseURL+"/api/loyalty/earn", payload, nil)
}

func (l *Loyalty) RedeemPoints(ctx context.Context, customerID string, points int, orderID string) error {
	payload := pointsPayload{
		CustomerID:  customerID,
		Points:      points,
		OrderID:     orderID,
		Description: "Redeemed on order " + orderID,
	}
	return l.client.Post(ctx, l.baseURL+"/api/loyalty/redeem", payload, nil)
}
