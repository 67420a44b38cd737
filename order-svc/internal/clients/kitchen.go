package clients

import (
	"context"
	"fmt"

	"anugerah-resto/order-svc/internal/domain"
	"anugerah-resto/order-svc/internal/service"
	"anugerah-resto/rpc"
)

// Kitchen calls the kitchen service ticket API.
type Kitchen struct {
	client  *rpc.Client
	baseURL string
}

var _ service.KitchenClient = (*Kitchen)(nil)

func NewKitchen(client *rpc.Client, baseURL string) *Kitchen {
	return &Kitchen{client: client, baseURL: baseURL}
}

type ticketItem struct {
	MenuID   string `json:"menu_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type ticketPayload struct {
	OrderID     string       `json:"order_id"`
	TableNumber int          `json:"table_number,omitempty"`
	Items       []ticketItem `json:"items"`
	Notes       string       `json:"notes,omitempty"`
}

type ticketResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

func (k *Kitchen) CreateTicket(ctx context.Context, order *domain.Order) error {
	payload := ticketPayload{
		OrderID:     order.OrderID,
		TableNumber: order.TableNumber,
		Notes:       order.Notes,
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, ticketItem{
			MenuID:   item.MenuID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	var ticket ticketResponse
	return k.client.Post(ctx, k.baseURL+"/api/tickets", payload, &ticket)
}

func (k *Kitchen) CompleteTicketByOrder(ctx context.Context, orderID string) error {
	return k.closeTicket(ctx, orderID, "complete")
}

func (k *Kitchen) CancelTicketByOrder(ctx context.Context, orderID string) error {
	return k.closeTicket(ctx, orderID, "cancel")
}

func (k *Kitchen) closeTicket(ctx context.Context, orderID, action string) error {
	var ticket ticketResponse
	if err := k.client.Get(ctx, fmt.Sprintf("%s/api/tickets/by-order/%s", k.baseURL, orderID), &ticket); err != nil {
		return err
	}
	return k.client.Post(ctx, fmt.Sprintf("%s/api/tickets/%d/%s", k.baseURL, ticket.ID, action), nil, &ticket)
}
