package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"anugerah-resto/order-svc/internal/domain"
	"anugerah-resto/order-svc/internal/mocks"
	"anugerah-resto/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testRates = service.Rates{
	Tax:           0.10,
	ServiceCharge: 0.05,
	Points:        0.01,
	Redemption:    100,
}

type orderDeps struct {
	orders    *mocks.OrderRepository
	menus     *mocks.MenuRepository
	kitchen   *mocks.KitchenClient
	inventory *mocks.InventoryClient
	loyalty   *mocks.LoyaltyClient
	publisher *mocks.OrderPublisher
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		orders:    mocks.NewOrderRepository(t),
		menus:     mocks.NewMenuRepository(t),
		kitchen:   mocks.NewKitchenClient(t),
		inventory: mocks.NewInventoryClient(t),
		loyalty:   mocks.NewLoyaltyClient(t),
		publisher: mocks.NewOrderPublisher(t),
	}
}

func (d orderDeps) newService(qr service.QRGenerator) *service.OrderService {
	return service.NewOrderService(d.orders, d.menus, d.kitchen, d.inventory, d.loyalty, d.publisher, qr, testRates)
}

func nasiGoreng() *domain.Menu {
	return &domain.Menu{
		ID: 1, MenuID: "nasi-goreng", Name: "Nasi Goreng Spesial",
		Price: 45000, Available: true,
		Ingredients: []domain.IngredientRequirement{
			{IngredientID: 1, Quantity: 0.2},
			{IngredientID: 2, Quantity: 0.1},
		},
	}
}

func esTeh() *domain.Menu {
	return &domain.Menu{
		ID: 2, MenuID: "es-teh", Name: "Es Teh Manis",
		Price: 8000, Available: true,
		Ingredients: []domain.IngredientRequirement{
			{IngredientID: 3, Quantity: 0.05},
		},
	}
}

func TestOrderService_CreateOrder_Totals(t *testing.T) {
	deps := newOrderDeps(t)
	svc := deps.newService(nil)
	ctx := context.Background()

	deps.orders.On("GetOrder", "ORD-100").Return(nil, sql.ErrNoRows)
	deps.menus.On("GetMenu", "nasi-goreng").Return(nasiGoreng(), nil)
	deps.menus.On("GetMenu", "es-teh").Return(esTeh(), nil)
	deps.orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 1
		}).Return(nil)
	deps.kitchen.On("CreateTicket", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.inventory.On("ReduceStock", ctx, 1, 0.4, "ORD-100").Return(nil)
	deps.inventory.On("ReduceStock", ctx, 2, 0.2, "ORD-100").Return(nil)
	deps.inventory.On("ReduceStock", ctx, 3, 0.05, "ORD-100").Return(nil)
	deps.loyalty.On("RedeemPoints", ctx, "CUST-1", 50, "ORD-100").Return(nil)
	deps.loyalty.On("EarnPoints", ctx, "CUST-1", 1077, "ORD-100").Return(nil)
	deps.orders.On("UpdateOrderOutcome", mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.publisher.On("PublishOrder", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil)

	result, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		OrderID:    "ORD-100",
		CustomerID: "CUST-1",
		Items: []service.CreateOrderItemInput{
			{MenuID: "nasi-goreng", Quantity: 2},
			{MenuID: "es-teh", Quantity: 1},
		},
		LoyaltyPointsUsed: 50,
	})

	assert.NoError(t, err)
	order := result.Order
	assert.Equal(t, 98000.0, order.Subtotal)
	assert.Equal(t, 9800.0, order.Tax)
	assert.Equal(t, 4900.0, order.ServiceCharge)
	assert.Equal(t, 5000.0, order.Discount)
	assert.Equal(t, 107700.0, order.Total)
	assert.Equal(t, 1077, order.PointsEarned)
	assert.True(t, order.KitchenOrderCreated)
	assert.True(t, order.StockUpdated)
	assert.True(t, order.LoyaltyUpdated)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)

	for _, step := range order.Steps {
		assert.NotEqual(t, domain.StepFailed, step.Status, "step %s failed", step.Step)
	}
}

// The order row is the durability boundary: an unreachable kitchen must
// not fail the create, only leave the flag off for a later retry.
func TestOrderService_CreateOrder_KitchenDown(t *testing.T) {
	deps := newOrderDeps(t)
	svc := deps.newService(nil)
	ctx := context.Background()

	deps.orders.On("GetOrder", "ORD-101").Return(nil, sql.ErrNoRows)
	deps.menus.On("GetMenu", "es-teh").Return(esTeh(), nil)
	deps.orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.kitchen.On("CreateTicket", ctx, mock.AnythingOfType("*domain.Order")).
		Return(errors.New("connection refused"))
	deps.inventory.On("ReduceStock", ctx, 3, 0.05, "ORD-101").Return(nil)
	deps.orders.On("UpdateOrderOutcome", mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.publisher.On("PublishOrder", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil)

	result, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		OrderID: "ORD-101",
		Items:   []service.CreateOrderItemInput{{MenuID: "es-teh", Quantity: 1}},
	})

	assert.NoError(t, err)
	order := result.Order
	assert.False(t, order.KitchenOrderCreated)
	assert.True(t, order.StockUpdated)
	assert.Contains(t, result.Message, "Kitchen is unreachable")

	var kitchenStep *domain.SagaStep
	for i := range order.Steps {
		if order.Steps[i].Step == "kitchen_ticket" {
			kitchenStep = &order.Steps[i]
		}
	}
	if assert.NotNil(t, kitchenStep) {
		assert.Equal(t, domain.StepFailed, kitchenStep.Status)
		assert.Contains(t, kitchenStep.Detail, "connection refused")
	}
}

// Every debit is attempted even after one fails, so a retried order only
// has to fill the gaps.
func TestOrderService_CreateOrder_StockShort(t *testing.T) {
	deps := newOrderDeps(t)
	svc := deps.newService(nil)
	ctx := context.Background()

	deps.orders.On("GetOrder", "ORD-102").Return(nil, sql.ErrNoRows)
	deps.menus.On("GetMenu", "nasi-goreng").Return(nasiGoreng(), nil)
	deps.orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.kitchen.On("CreateTicket", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.inventory.On("ReduceStock", ctx, 1, 0.2, "ORD-102").Return(errors.New("insufficient stock"))
	deps.inventory.On("ReduceStock", ctx, 2, 0.1, "ORD-102").Return(nil)
	deps.orders.On("UpdateOrderOutcome", mock.AnythingOfType("*domain.Order")).Return(nil)
	deps.publisher.On("PublishOrder", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil)

	result, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		OrderID: "ORD-102",
		Items:   []service.CreateOrderItemInput{{MenuID: "nasi-goreng", Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.False(t, result.Order.StockUpdated)
	assert.True(t, result.Order.KitchenOrderCreated)
	deps.inventory.AssertNumberOfCalls(t, "ReduceStock", 2)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name          string
		input         service.CreateOrderInput
		prepareMocks  func(deps orderDeps)
		expectedError error
	}{
		{
			name:          "no_items",
			input:         service.CreateOrderInput{OrderID: "ORD-1"},
			prepareMocks:  func(deps orderDeps) {},
			expectedError: service.ErrEmptyOrder,
		},
		{
			name: "unknown_menu",
			input: service.CreateOrderInput{
				OrderID: "ORD-1",
				Items:   []service.CreateOrderItemInput{{MenuID: "rendang", Quantity: 1}},
			},
			prepareMocks: func(deps orderDeps) {
				deps.orders.On("GetOrder", "ORD-1").Return(nil, sql.ErrNoRows)
				deps.menus.On("GetMenu", "rendang").Return(nil, sql.ErrNoRows)
			},
			expectedError: service.ErrMenuNotFound,
		},
		{
			name: "unavailable_menu",
			input: service.CreateOrderInput{
				OrderID: "ORD-1",
				Items:   []service.CreateOrderItemInput{{MenuID: "es-teh", Quantity: 1}},
			},
			prepareMocks: func(deps orderDeps) {
				unavailable := esTeh()
				unavailable.Available = false
				deps.orders.On("GetOrder", "ORD-1").Return(nil, sql.ErrNoRows)
				deps.menus.On("GetMenu", "es-teh").Return(unavailable, nil)
			},
			expectedError: service.ErrMenuUnavailable,
		},
		{
			name: "duplicate_order_id",
			input: service.CreateOrderInput{
				OrderID: "ORD-1",
				Items:   []service.CreateOrderItemInput{{MenuID: "es-teh", Quantity: 1}},
			},
			prepareMocks: func(deps orderDeps) {
				deps.orders.On("GetOrder", "ORD-1").Return(&domain.Order{OrderID: "ORD-1"}, nil)
			},
			expectedError: service.ErrDuplicateOrder,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newOrderDeps(t)
			svc := deps.newService(nil)
			testCase.prepareMocks(deps)

			result, err := svc.CreateOrder(context.Background(), testCase.input)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("completed_closes_kitchen_ticket", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderReady, KitchenOrderCreated: true}
		done := &domain.Order{OrderID: "ORD-1", Status: domain.OrderCompleted}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)
		deps.kitchen.On("CompleteTicketByOrder", ctx, "ORD-1").Return(nil)
		deps.orders.On("UpdateOrderStatus", "ORD-1", domain.OrderCompleted, true).Return(done, nil)
		deps.publisher.On("PublishOrder", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil)

		order, err := svc.UpdateOrderStatus(ctx, "ORD-1", domain.OrderCompleted)

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, order.Status)
	})

	t.Run("terminal_rejects_update", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderCompleted}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)

		order, err := svc.UpdateOrderStatus(ctx, "ORD-1", domain.OrderPreparing)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("not_found", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		deps.orders.On("GetOrder", "ORD-404").Return(nil, sql.ErrNoRows)

		order, err := svc.UpdateOrderStatus(ctx, "ORD-404", domain.OrderReady)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("pending_order_cancels", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderPending, KitchenOrderCreated: true}
		cancelled := &domain.Order{OrderID: "ORD-1", Status: domain.OrderCancelled}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)
		deps.kitchen.On("CancelTicketByOrder", ctx, "ORD-1").Return(nil)
		deps.orders.On("UpdateOrderStatus", "ORD-1", domain.OrderCancelled, false).Return(cancelled, nil)
		deps.publisher.On("PublishOrder", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil)

		order, err := svc.CancelOrder(ctx, "ORD-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, order.Status)
	})

	t.Run("ready_order_cannot_cancel", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderReady}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)

		order, err := svc.CancelOrder(ctx, "ORD-1")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestOrderService_SendToKitchen(t *testing.T) {
	ctx := context.Background()

	t.Run("retries_missed_ticket", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderPending}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)
		deps.kitchen.On("CreateTicket", ctx, stored).Return(nil)
		deps.orders.On("UpdateOrderOutcome", stored).Return(nil)

		order, err := svc.SendToKitchen(ctx, "ORD-1")

		assert.NoError(t, err)
		assert.True(t, order.KitchenOrderCreated)
	})

	t.Run("already_sent_is_a_noop", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderPending, KitchenOrderCreated: true}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)

		order, err := svc.SendToKitchen(ctx, "ORD-1")

		assert.NoError(t, err)
		assert.True(t, order.KitchenOrderCreated)
		deps.kitchen.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
	})

	t.Run("cancelled_order_rejected", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		stored := &domain.Order{OrderID: "ORD-1", Status: domain.OrderCancelled}
		deps.orders.On("GetOrder", "ORD-1").Return(stored, nil)

		order, err := svc.SendToKitchen(ctx, "ORD-1")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestOrderService_OrderQRCode(t *testing.T) {
	t.Run("returns_stored_png", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := deps.newService(nil)

		deps.orders.On("GetOrder", "ORD-1").Return(&domain.Order{OrderID: "ORD-1"}, nil)
		deps.orders.On("GetQRCode", "ORD-1").Return([]byte("png-bytes"), nil)

		png, err := svc.OrderQRCode("ORD-1")

		assert.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), png)
	})

	t.Run("regenerates_missing_png", func(t *testing.T) {
		deps := newOrderDeps(t)
		qr := mocks.NewQRGenerator(t)
		svc := deps.newService(qr)

		deps.orders.On("GetOrder", "ORD-1").Return(&domain.Order{OrderID: "ORD-1"}, nil)
		deps.orders.On("GetQRCode", "ORD-1").Return(nil, nil)
		qr.On("Generate", "ORD-1").Return([]byte("fresh-png"), nil)
		deps.orders.On("StoreQRCode", "ORD-1", []byte("fresh-png")).Return(nil)

		png, err := svc.OrderQRCode("ORD-1")

		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh-png"), png)
	})
}

func TestMenuService_CheckMenuStock(t *testing.T) {
	menus := mocks.NewMenuRepository(t)
	inventory := mocks.NewInventoryClient(t)
	svc := service.NewMenuService(menus, inventory)
	ctx := context.Background()

	menus.On("GetMenu", "nasi-goreng").Return(nasiGoreng(), nil)
	inventory.On("CheckStock", ctx, 1, 0.4).Return(&service.StockCheckResult{
		Available: true, CurrentStock: 10, RequestedQuantity: 0.4,
	}, nil)
	inventory.On("CheckStock", ctx, 2, 0.2).Return(&service.StockCheckResult{
		Available: false, CurrentStock: 0.1, RequestedQuantity: 0.2, Message: "Insufficient stock for Ayam",
	}, nil)

	check, err := svc.CheckMenuStock(ctx, "nasi-goreng", 2)

	assert.NoError(t, err)
	assert.False(t, check.Available)
	assert.Len(t, check.Ingredients, 2)
	assert.True(t, check.Ingredients[0].Available)
	assert.False(t, check.Ingredients[1].Available)
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("merges_existing_line", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		menus := mocks.NewMenuRepository(t)
		svc := service.NewCartService(carts, menus, nil)

		stored := &domain.Cart{
			ID:     1,
			Status: domain.CartActive,
			Items:  []domain.CartItem{{MenuID: "es-teh", Name: "Es Teh Manis", Price: 8000, Quantity: 1}},
		}
		carts.On("GetCart", 1).Return(stored, nil)
		menus.On("GetMenu", "es-teh").Return(esTeh(), nil)
		carts.On("UpdateCartItems", 1, mock.AnythingOfType("[]domain.CartItem")).Return(nil)

		cart, err := svc.AddItem(1, "es-teh", 2)

		assert.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("closed_cart_rejected", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		menus := mocks.NewMenuRepository(t)
		svc := service.NewCartService(carts, menus, nil)

		stored := &domain.Cart{ID: 1, Status: domain.CartCompleted}
		carts.On("GetCart", 1).Return(stored, nil)

		cart, err := svc.AddItem(1, "es-teh", 1)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrCartClosed)
	})
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	carts := mocks.NewCartRepository(t)
	menus := mocks.NewMenuRepository(t)
	svc := service.NewCartService(carts, menus, nil)

	stored := &domain.Cart{
		ID:     1,
		Status: domain.CartActive,
		Items: []domain.CartItem{
			{MenuID: "es-teh", Quantity: 2},
			{MenuID: "nasi-goreng", Quantity: 1},
		},
	}
	carts.On("GetCart", 1).Return(stored, nil)
	carts.On("UpdateCartItems", 1, mock.AnythingOfType("[]domain.CartItem")).Return(nil)

	// Zero quantity removes the line entirely.
	cart, err := svc.UpdateItemQuantity(1, "es-teh", 0)

	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "nasi-goreng", cart.Items[0].MenuID)
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("builds_order_from_cart", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		menus := mocks.NewMenuRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(carts, menus, orders)

		stored := &domain.Cart{
			ID:          1,
			CustomerID:  "CUST-1",
			TableNumber: 4,
			Status:      domain.CartActive,
			Items:       []domain.CartItem{{MenuID: "es-teh", Quantity: 2}},
		}
		carts.On("GetCart", 1).Return(stored, nil)
		orders.On("CreateOrder", ctx, mock.MatchedBy(func(input service.CreateOrderInput) bool {
			return input.CustomerID == "CUST-1" &&
				input.TableNumber == 4 &&
				len(input.Items) == 1 &&
				input.Items[0].MenuID == "es-teh" &&
				input.Items[0].Quantity == 2
		})).Return(&domain.CreateOrderResult{Order: &domain.Order{OrderID: "ORD-1"}}, nil)
		carts.On("SetCartStatus", 1, domain.CartCompleted).Return(nil)

		result, err := svc.Checkout(ctx, 1, service.CreateOrderInput{PaymentMethod: "cash"})

		assert.NoError(t, err)
		assert.Equal(t, "ORD-1", result.Order.OrderID)
	})

	t.Run("empty_cart_rejected", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		menus := mocks.NewMenuRepository(t)
		svc := service.NewCartService(carts, menus, nil)

		stored := &domain.Cart{ID: 1, Status: domain.CartActive, Items: []domain.CartItem{}}
		carts.On("GetCart", 1).Return(stored, nil)

		result, err := svc.Checkout(ctx, 1, service.CreateOrderInput{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, service.ErrCartEmpty)
	})
}
