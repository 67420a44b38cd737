package clients

import (
	"context"
	"fmt"
	"log"

	"anugerah-resto/inventory-svc/internal/domain"
	"anugerah-resto/inventory-svc/internal/service"
	"anugerah-resto/rpc"
)

// Grocer calls the partner grocery shop. Newer partner deployments expose
// the catalog at /api/products; older ones only have /api/items with a
// reduced payload, so catalog reads fall back to the legacy route.
type Grocer struct {
	client  *rpc.Client
	baseURL string
}

func NewGrocer(client *rpc.Client, baseURL string) *Grocer {
	return &Grocer{client: client, baseURL: baseURL}
}

var _ service.GrocerClient = (*Grocer)(nil)

type legacyItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

func (g *Grocer) ListProducts(ctx context.Context) ([]domain.GrocerProduct, error) {
	var products []domain.GrocerProduct
	err := rpc.WithFallback(
		func() error {
			return g.client.Get(ctx, g.baseURL+"/api/products", &products)
		},
		func() error {
			log.Printf("grocer: product catalog unavailable, falling back to legacy items route")
			var items []legacyItem
			if err := g.client.Get(ctx, g.baseURL+"/api/items", &items); err != nil {
				return err
			}
			products = products[:0]
			for _, item := range items {
				products = append(products, domain.GrocerProduct{
					ID:        item.ID,
					Name:      item.Name,
					Price:     item.Price,
					Unit:      "pcs",
					Available: item.Stock > 0,
				})
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocer products: %w", err)
	}
	return products, nil
}

func (g *Grocer) GetProduct(ctx context.Context, productID string) (*domain.GrocerProduct, error) {
	var product domain.GrocerProduct
	err := rpc.WithFallback(
		func() error {
			return g.client.Get(ctx, fmt.Sprintf("%s/api/products/%s", g.baseURL, productID), &product)
		},
		func() error {
			var item legacyItem
			if err := g.client.Get(ctx, fmt.Sprintf("%s/api/items/%s", g.baseURL, productID), &item); err != nil {
				return err
			}
			product = domain.GrocerProduct{
				ID:        item.ID,
				Name:      item.Name,
				Price:     item.Price,
				Unit:      "pcs",
				Available: item.Stock > 0,
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load grocer product %s: %w", productID, err)
	}
	return &product, nil
}

func (g *Grocer) CheckStock(ctx context.Context, productID string, quantity float64) (*domain.StockCheck, error) {
	var check domain.StockCheck
	payload := map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	}
	if err := g.client.Post(ctx, g.baseURL+"/api/stock/check", payload, &check); err != nil {
		return nil, fmt.Errorf("failed to check grocer stock: %w", err)
	}
	return &check, nil
}

func (g *Grocer) CreateOrder(ctx context.Context, orderNumber string, items []service.GrocerOrderItem) (*domain.GrocerOrder, error) {
	var order domain.GrocerOrder
	payload := map[string]any{
		"order_number": orderNumber,
		"items":        items,
	}
	if err := g.client.Post(ctx, g.baseURL+"/api/orders", payload, &order); err != nil {
		return nil, fmt.Errorf("failed to create grocer order: %w", err)
	}
	return &order, nil
}
