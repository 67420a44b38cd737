package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anugerah-resto/order-svc/internal/clients"
	"anugerah-resto/rpc"

	"github.com/stretchr/testify/assert"
)

func TestInventoryClient_CheckStockDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/check", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"available":false,"current_stock":25,"requested_quantity":30,"message":"Insufficient stock: Ayam has 25.00 kg, requested 30.00 kg"}`))
	}))
	defer server.Close()

	client := rpc.NewClient(rpc.Policy{MaxRetries: 1, BaseDelay: time.Millisecond, Timeout: time.Second}, "")
	inventory := clients.NewInventory(client, server.URL)

	result, err := inventory.CheckStock(context.Background(), 1, 30)

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, 25.0, result.CurrentStock)
	assert.Equal(t, 30.0, result.RequestedQuantity)
	assert.Contains(t, result.Message, "Insufficient stock")
}
