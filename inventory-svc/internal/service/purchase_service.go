package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"anugerah-resto/inventory-svc/internal/domain"
)

var (
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrGrocerStockShort      = errors.New("grocer stock not available")
)

const grocerSupplierName = "Toko Sembako"

type PurchaseService struct {
	purchases PurchaseRepository
	stock     StockServiceInterface
	grocer    GrocerClient
}

func NewPurchaseService(purchases PurchaseRepository, stock StockServiceInterface, grocer GrocerClient) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		stock:     stock,
		grocer:    grocer,
	}
}

func (s *PurchaseService) CreateSupplier(supplier *domain.Supplier) error {
	if supplier.Status == "" {
		supplier.Status = "active"
	}
	return s.purchases.CreateSupplier(supplier)
}

func (s *PurchaseService) ListSuppliers(status string) ([]domain.Supplier, error) {
	return s.purchases.ListSuppliers(status)
}

func (s *PurchaseService) CreatePurchaseOrder(po *domain.PurchaseOrder) error {
	var total float64
	for i := range po.Items {
		po.Items[i].TotalPrice = po.Items[i].Quantity * po.Items[i].UnitPrice
		total += po.Items[i].TotalPrice
	}
	po.TotalAmount = total
	if po.Status == "" {
		po.Status = "pending"
	}
	return s.purchases.CreatePurchaseOrder(po)
}

func (s *PurchaseService) GetPurchaseOrder(id int) (*domain.PurchaseOrder, error) {
	po, err := s.purchases.GetPurchaseOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPurchaseOrderNotFound
	}
	return po, err
}

func (s *PurchaseService) ListPurchaseOrders(status string) ([]domain.PurchaseOrder, error) {
	return s.purchases.ListPurchaseOrders(status)
}

// ReceivePurchaseOrder books every outstanding line into the stock ledger
// and marks the order received. Each line becomes an `in` movement
// referencing the purchase order.
func (s *PurchaseService) ReceivePurchaseOrder(ctx context.Context, id int) (*domain.PurchaseOrder, error) {
	po, err := s.purchases.GetPurchaseOrder(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPurchaseOrderNotFound
		}
		return nil, err
	}

	for _, item := range po.Items {
		if item.ReceivedQuantity >= item.Quantity {
			continue
		}
		_, err := s.stock.Credit(ctx, item.IngredientID, item.Quantity,
			fmt.Sprintf("Purchase order %s", po.OrderNumber), fmt.Sprintf("%d", po.ID), "purchase_order")
		if err != nil {
			return nil, fmt.Errorf("failed to credit ingredient %d: %w", item.IngredientID, err)
		}
		if err := s.purchases.MarkItemReceived(item.ID); err != nil {
			return nil, fmt.Errorf("failed to mark item %d received: %w", item.ID, err)
		}
	}

	if err := s.purchases.MarkPurchaseOrderReceived(po.ID); err != nil {
		return nil, err
	}
	return s.purchases.GetPurchaseOrder(po.ID)
}

func (s *PurchaseService) ListGrocerProducts(ctx context.Context) ([]domain.GrocerProduct, error) {
	return s.grocer.ListProducts(ctx)
}

// PurchaseFromGrocer places an order at the partner shop, then mirrors it
// locally: a purchase order row plus a stock credit per line. Ingredients
// unknown to the ledger are created on the fly under the grocer supplier.
func (s *PurchaseService) PurchaseFromGrocer(ctx context.Context, orderNumber string, items []GrocerPurchaseItem, notes string) (*domain.PurchaseOrder, error) {
	orderItems := make([]GrocerOrderItem, 0, len(items))
	products := make([]*domain.GrocerProduct, 0, len(items))
	for _, item := range items {
		check, err := s.grocer.CheckStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to check grocer stock for %s: %w", item.ProductID, err)
		}
		if !check.Available {
			return nil, fmt.Errorf("%w: product %s: %s", ErrGrocerStockShort, item.ProductID, check.Message)
		}

		product, err := s.grocer.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load grocer product %s: %w", item.ProductID, err)
		}
		products = append(products, product)
		orderItems = append(orderItems, GrocerOrderItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	grocerOrder, err := s.grocer.CreateOrder(ctx, orderNumber, orderItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create grocer order: %w", err)
	}
	log.Printf("purchase: grocer order %s placed (%s), syncing stock", grocerOrder.ID, grocerOrder.Status)

	supplierID, err := s.ensureGrocerSupplier()
	if err != nil {
		return nil, err
	}

	po := &domain.PurchaseOrder{
		SupplierID:  supplierID,
		OrderNumber: orderNumber,
		Status:      "ordered",
		Notes:       notes,
	}
	for i, item := range items {
		ingredientID, err := s.ensureIngredient(products[i], supplierID)
		if err != nil {
			return nil, err
		}
		po.Items = append(po.Items, domain.PurchaseOrderItem{
			IngredientID: ingredientID,
			Quantity:     item.Quantity,
			UnitPrice:    products[i].Price,
		})
	}
	if err := s.CreatePurchaseOrder(po); err != nil {
		return nil, fmt.Errorf("failed to record purchase order: %w", err)
	}

	for _, line := range po.Items {
		_, err := s.stock.Credit(ctx, line.IngredientID, line.Quantity,
			fmt.Sprintf("Purchase from grocer: %s", orderNumber), grocerOrder.ID, "grocer_order")
		if err != nil {
			return nil, fmt.Errorf("failed to credit ingredient %d: %w", line.IngredientID, err)
		}
	}

	return s.purchases.GetPurchaseOrder(po.ID)
}

func (s *PurchaseService) ensureGrocerSupplier() (int, error) {
	supplier, err := s.purchases.GetSupplierByName(grocerSupplierName)
	if err == nil {
		return supplier.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up grocer supplier: %w", err)
	}

	created := &domain.Supplier{Name: grocerSupplierName, Status: "active"}
	if err := s.purchases.CreateSupplier(created); err != nil {
		return 0, fmt.Errorf("failed to create grocer supplier: %w", err)
	}
	return created.ID, nil
}

func (s *PurchaseService) ensureIngredient(product *domain.GrocerProduct, supplierID int) (int, error) {
	if ing, err := s.stock.GetIngredientByName(product.Name); err == nil {
		return ing.ID, nil
	} else if !errors.Is(err, ErrIngredientNotFound) {
		return 0, fmt.Errorf("failed to look up ingredient %s: %w", product.Name, err)
	}

	ing := &domain.Ingredient{
		Name:          product.Name,
		Unit:          product.Unit,
		Category:      product.Category,
		MinStockLevel: 10,
		SupplierID:    supplierID,
		CostPerUnit:   product.Price,
		Status:        domain.IngredientActive,
	}
	if err := s.stock.CreateIngredient(ing); err != nil {
		return 0, fmt.Errorf("failed to create ingredient %s: %w", product.Name, err)
	}
	return ing.ID, nil
}
