package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"anugerah-resto/order-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateOrder    = errors.New("order already exists")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrMenuNotFound      = errors.New("menu item not found")
	ErrMenuUnavailable   = errors.New("menu item unavailable")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Rates are the pricing knobs applied to every order.
type Rates struct {
	Tax           float64
	ServiceCharge float64
	Points        float64
	Redemption    float64
}

type OrderService struct {
	orders    OrderRepository
	menus     MenuRepository
	kitchen   KitchenClient
	inventory InventoryClient
	loyalty   LoyaltyClient
	publisher OrderPublisher
	qr        QRGenerator
	rates     Rates
}

func NewOrderService(
	orders OrderRepository,
	menus MenuRepository,
	kitchen KitchenClient,
	inventory InventoryClient,
	loyalty LoyaltyClient,
	publisher OrderPublisher,
	qr QRGenerator,
	rates Rates,
) *OrderService {
	return &OrderService{
		orders:    orders,
		menus:     menus,
		kitchen:   kitchen,
		inventory: inventory,
		loyalty:   loyalty,
		publisher: publisher,
		qr:        qr,
		rates:     rates,
	}
}

// orderTransitions mirrors the kitchen ticket lifecycle. Terminal statuses
// have no successors; cancellation is closed once food is ready.
var orderTransitions = map[string][]string{
	domain.OrderPending:   {domain.OrderPreparing, domain.OrderReady, domain.OrderCompleted, domain.OrderCancelled},
	domain.OrderPreparing: {domain.OrderReady, domain.OrderCompleted, domain.OrderCancelled},
	domain.OrderReady:     {domain.OrderCompleted},
	domain.OrderCompleted: {},
	domain.OrderCancelled: {},
}

func canTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateOrder runs the order saga. The order row is the durability
// boundary: once it is inserted the order exists no matter what the
// downstream services do. Kitchen, stock and loyalty calls run afterwards
// and record their outcome in the saga step log; none of them roll the
// order back.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	orderID := input.OrderID
	if orderID == "" {
		orderID = uuid.New().String()
	}
	if existing, err := s.orders.GetOrder(orderID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateOrder, orderID)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	type requirement struct {
		IngredientID int
		Quantity     float64
	}
	var requirements []requirement

	var subtotal float64
	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be positive", ErrEmptyOrder, in.MenuID)
		}
		menu, err := s.menus.GetMenu(in.MenuID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", ErrMenuNotFound, in.MenuID)
			}
			return nil, err
		}
		if !menu.Available {
			return nil, fmt.Errorf("%w: %s", ErrMenuUnavailable, menu.Name)
		}
		items = append(items, domain.OrderItem{
			MenuID:   menu.MenuID,
			Name:     menu.Name,
			Price:    menu.Price,
			Quantity: in.Quantity,
			Notes:    in.Notes,
		})
		subtotal += menu.Price * float64(in.Quantity)
		for _, req := range menu.Ingredients {
			requirements = append(requirements, requirement{
				IngredientID: req.IngredientID,
				Quantity:     req.Quantity * float64(in.Quantity),
			})
		}
	}

	tax := subtotal * s.rates.Tax
	serviceCharge := subtotal * s.rates.ServiceCharge
	discount := input.Discount + float64(input.LoyaltyPointsUsed)*s.rates.Redemption
	total := subtotal + tax + serviceCharge - discount
	if total < 0 {
		total = 0
	}

	order := &domain.Order{
		OrderID:           orderID,
		CustomerID:        input.CustomerID,
		CustomerName:      input.CustomerName,
		TableNumber:       input.TableNumber,
		Items:             items,
		Subtotal:          subtotal,
		Tax:               tax,
		ServiceCharge:     serviceCharge,
		Discount:          discount,
		LoyaltyPointsUsed: input.LoyaltyPointsUsed,
		Total:             total,
		PaymentMethod:     input.PaymentMethod,
		PaymentStatus:     domain.PaymentPending,
		Status:            domain.OrderPending,
		Notes:             input.Notes,
	}

	if err := s.orders.InsertOrder(order); err != nil {
		return nil, err
	}
	steps := []domain.SagaStep{{Step: "persist_order", Status: domain.StepOK}}

	if s.qr != nil {
		if png, err := s.qr.Generate(order.OrderID); err != nil {
			log.Printf("order %s: qr generation failed: %v", order.OrderID, err)
		} else if err := s.orders.StoreQRCode(order.OrderID, png); err != nil {
			log.Printf("order %s: qr store failed: %v", order.OrderID, err)
		}
	}

	if err := s.kitchen.CreateTicket(ctx, order); err != nil {
		log.Printf("order %s: kitchen ticket failed: %v", order.OrderID, err)
		steps = append(steps, domain.SagaStep{Step: "kitchen_ticket", Status: domain.StepFailed, Detail: err.Error()})
	} else {
		order.KitchenOrderCreated = true
		order.KitchenStatus = domain.OrderPending
		steps = append(steps, domain.SagaStep{Step: "kitchen_ticket", Status: domain.StepOK})
	}

	if len(requirements) == 0 {
		steps = append(steps, domain.SagaStep{Step: "stock_debit", Status: domain.StepSkip, Detail: "no ingredient requirements"})
	} else {
		stockOK := true
		var firstErr error
		for _, req := range requirements {
			if err := s.inventory.ReduceStock(ctx, req.IngredientID, req.Quantity, order.OrderID); err != nil {
				log.Printf("order %s: stock debit for ingredient %d failed: %v", order.OrderID, req.IngredientID, err)
				stockOK = false
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		order.StockUpdated = stockOK
		if stockOK {
			steps = append(steps, domain.SagaStep{Step: "stock_debit", Status: domain.StepOK})
		} else {
			steps = append(steps, domain.SagaStep{Step: "stock_debit", Status: domain.StepFailed, Detail: firstErr.Error()})
		}
	}

	if input.CustomerID == "" {
		steps = append(steps, domain.SagaStep{Step: "loyalty_points", Status: domain.StepSkip, Detail: "no customer"})
	} else {
		steps = append(steps, s.applyLoyalty(ctx, order, input.LoyaltyPointsUsed)...)
	}

	order.Steps = steps
	if err := s.orders.UpdateOrderOutcome(order); err != nil {
		log.Printf("order %s: saga outcome update failed: %v", order.OrderID, err)
	}

	s.publish(ctx, "order_created", order)

	return &domain.CreateOrderResult{Order: order, Message: resultMessage(order)}, nil
}

func (s *OrderService) applyLoyalty(ctx context.Context, order *domain.Order, pointsUsed int) []domain.SagaStep {
	var steps []domain.SagaStep
	loyaltyOK := true

	if pointsUsed > 0 {
		if err := s.loyalty.RedeemPoints(ctx, order.CustomerID, pointsUsed, order.OrderID); err != nil {
			log.Printf("order %s: loyalty redeem failed: %v", order.OrderID, err)
			steps = append(steps, domain.SagaStep{Step: "loyalty_redeem", Status: domain.StepFailed, Detail: err.Error()})
			loyaltyOK = false
		} else {
			steps = append(steps, domain.SagaStep{Step: "loyalty_redeem", Status: domain.StepOK})
		}
	}

	earned := int(order.Total * s.rates.Points)
	if earned <= 0 {
		steps = append(steps, domain.SagaStep{Step: "loyalty_earn", Status: domain.StepSkip, Detail: "nothing to earn"})
	} else if err := s.loyalty.EarnPoints(ctx, order.CustomerID, earned, order.OrderID); err != nil {
		log.Printf("order %s: loyalty earn failed: %v", order.OrderID, err)
		steps = append(steps, domain.SagaStep{Step: "loyalty_earn", Status: domain.StepFailed, Detail: err.Error()})
		loyaltyOK = false
	} else {
		order.PointsEarned = earned
		steps = append(steps, domain.SagaStep{Step: "loyalty_earn", Status: domain.StepOK})
	}

	order.LoyaltyUpdated = loyaltyOK
	return steps
}

func resultMessage(order *domain.Order) string {
	msg := fmt.Sprintf("Order %s created", order.OrderID)
	if !order.KitchenOrderCreated {
		msg += ". Kitchen is unreachable, send the ticket manually"
	}
	if !order.StockUpdated {
		msg += ". Stock was not fully updated"
	}
	if order.PointsEarned > 0 {
		msg += fmt.Sprintf(". Earned %d loyalty points", order.PointsEarned)
	}
	return msg
}

func (s *OrderService) GetOrder(orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(status string, limit int) ([]domain.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.orders.ListOrders(status, limit)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, status)
	}

	completed := status == domain.OrderCompleted
	if completed && order.KitchenOrderCreated {
		if err := s.kitchen.CompleteTicketByOrder(ctx, orderID); err != nil {
			log.Printf("order %s: kitchen complete failed: %v", orderID, err)
		}
	}

	updated, err := s.orders.UpdateOrderStatus(orderID, status, completed)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "order_"+status, updated)
	return updated, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(order.Status, domain.OrderCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidTransition, order.Status)
	}

	if order.KitchenOrderCreated {
		if err := s.kitchen.CancelTicketByOrder(ctx, orderID); err != nil {
			log.Printf("order %s: kitchen cancel failed: %v", orderID, err)
		}
	}

	updated, err := s.orders.UpdateOrderStatus(orderID, domain.OrderCancelled, false)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "order_cancelled", updated)
	return updated, nil
}

// SendToKitchen retries the kitchen ticket for an order whose create saga
// could not reach the kitchen.
func (s *OrderService) SendToKitchen(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.KitchenOrderCreated {
		return order, nil
	}
	if order.Status == domain.OrderCompleted || order.Status == domain.OrderCancelled {
		return nil, fmt.Errorf("%w: order is %s", ErrInvalidTransition, order.Status)
	}

	if err := s.kitchen.CreateTicket(ctx, order); err != nil {
		return nil, err
	}

	order.KitchenOrderCreated = true
	order.KitchenStatus = domain.OrderPending
	order.Steps = append(order.Steps, domain.SagaStep{Step: "kitchen_ticket_retry", Status: domain.StepOK})
	if err := s.orders.UpdateOrderOutcome(order); err != nil {
		return nil, err
	}
	return order, nil
}

// OrderQRCode returns the receipt QR PNG, regenerating it when the stored
// copy is missing.
func (s *OrderService) OrderQRCode(orderID string) ([]byte, error) {
	if _, err := s.GetOrder(orderID); err != nil {
		return nil, err
	}
	png, err := s.orders.GetQRCode(orderID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if len(png) > 0 {
		return png, nil
	}
	if s.qr == nil {
		return nil, errors.New("qr generation disabled")
	}
	png, err = s.qr.Generate(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.orders.StoreQRCode(orderID, png); err != nil {
		log.Printf("order %s: qr store failed: %v", orderID, err)
	}
	return png, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderEvent{
		Type:       eventType,
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		Total:      order.Total,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.PublishOrder(ctx, evt); err != nil {
		log.Printf("publish %s for order %s: %v", eventType, order.OrderID, err)
	}
}
