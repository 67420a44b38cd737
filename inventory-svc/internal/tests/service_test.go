package tests

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"anugerah-resto/inventory-svc/internal/domain"
	"anugerah-resto/inventory-svc/internal/mocks"
	"anugerah-resto/inventory-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStockService_CheckAvailability(t *testing.T) {
	repository := mocks.NewStockRepository(t)
	svc := service.NewStockService(repository, nil, nil)

	ayam := &domain.Ingredient{ID: 1, Name: "Ayam", Unit: "kg", CurrentStock: 25}

	tests := []struct {
		name          string
		quantity      float64
		prepareMocks  func()
		wantAvailable bool
		expectedError error
	}{
		{
			name:     "available",
			quantity: 10,
			prepareMocks: func() {
				repository.On("GetIngredient", 1).Return(ayam, nil).Once()
			},
			wantAvailable: true,
		},
		{
			name:     "insufficient",
			quantity: 30,
			prepareMocks: func() {
				repository.On("GetIngredient", 1).Return(ayam, nil).Once()
			},
			wantAvailable: false,
		},
		{
			name:     "unknown_ingredient",
			quantity: 5,
			prepareMocks: func() {
				repository.On("GetIngredient", 1).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrIngredientNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			check, err := svc.CheckAvailability(1, testCase.quantity)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.wantAvailable, check.Available)
			assert.Equal(t, 25.0, check.CurrentStock)
			assert.Equal(t, testCase.quantity, check.RequestedQuantity)
			assert.NotEmpty(t, check.Message)
		})
	}
}

func TestStockService_CheckAvailability_DoesNotMutate(t *testing.T) {
	repository := mocks.NewStockRepository(t)
	svc := service.NewStockService(repository, nil, nil)

	repository.On("GetIngredient", 1).
		Return(&domain.Ingredient{ID: 1, Name: "Ayam", Unit: "kg", CurrentStock: 25}, nil).Twice()

	first, err := svc.CheckAvailability(1, 30)
	assert.NoError(t, err)
	assert.False(t, first.Available)

	// A failed check must not change the balance a later check sees.
	second, err := svc.CheckAvailability(1, 20)
	assert.NoError(t, err)
	assert.True(t, second.Available)
	assert.Equal(t, first.CurrentStock, second.CurrentStock)
}

func TestStockService_Debit(t *testing.T) {
	repository := mocks.NewStockRepository(t)
	marker := mocks.NewDebitMarker(t)
	publisher := mocks.NewMovementPublisher(t)

	svc := service.NewStockService(repository, marker, publisher)
	ctx := context.Background()

	ayam := &domain.Ingredient{ID: 1, Name: "Ayam", Unit: "kg", CurrentStock: 25}

	tests := []struct {
		name          string
		quantity      float64
		referenceID   string
		prepareMocks  func()
		expectedError error
		wantMovement  int
	}{
		{
			name:        "success_with_reference",
			quantity:    10,
			referenceID: "order-42",
			prepareMocks: func() {
				marker.On("Key", "order-42", 1).Return("debit:order-42:1").Once()
				marker.On("Get", ctx, "debit:order-42:1").Return(0, false, nil).Once()
				repository.On("GetIngredient", 1).Return(ayam, nil).Once()
				repository.On("DebitStock", 1, 10.0, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(2).(*domain.StockMovement).ID = 7
					}).
					Return(true, nil).Once()
				marker.On("Set", ctx, "debit:order-42:1", 7).Return(nil).Once()
				publisher.On("PublishMovement", ctx, mock.Anything).Return(nil).Once()
			},
			wantMovement: 7,
		},
		{
			name:        "replayed_reference_returns_original_movement",
			quantity:    10,
			referenceID: "order-42",
			prepareMocks: func() {
				marker.On("Key", "order-42", 1).Return("debit:order-42:1").Once()
				marker.On("Get", ctx, "debit:order-42:1").Return(7, true, nil).Once()
				repository.On("GetMovement", 7).
					Return(&domain.StockMovement{ID: 7, IngredientID: 1, MovementType: domain.MovementOut, Quantity: 10}, nil).Once()
			},
			wantMovement: 7,
		},
		{
			name:          "zero_quantity",
			quantity:      0,
			expectedError: service.ErrInvalidQuantity,
			prepareMocks:  func() {},
		},
		{
			name:     "unknown_ingredient",
			quantity: 5,
			prepareMocks: func() {
				repository.On("GetIngredient", 1).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrIngredientNotFound,
		},
		{
			name:     "insufficient_stock",
			quantity: 30,
			prepareMocks: func() {
				repository.On("GetIngredient", 1).Return(ayam, nil).Once()
				repository.On("DebitStock", 1, 30.0, mock.Anything).Return(false, nil).Once()
			},
			expectedError: service.ErrInsufficientStock,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			mv, err := svc.Debit(ctx, 1, testCase.quantity, "Order fulfillment", testCase.referenceID, "order")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.wantMovement, mv.ID)
			assert.Equal(t, domain.MovementOut, mv.MovementType)
		})
	}
}

func TestStockService_Credit(t *testing.T) {
	repository := mocks.NewStockRepository(t)
	publisher := mocks.NewMovementPublisher(t)

	svc := service.NewStockService(repository, nil, publisher)
	ctx := context.Background()

	repository.On("GetIngredient", 1).
		Return(&domain.Ingredient{ID: 1, Name: "Ayam", Unit: "kg", CurrentStock: 5, Status: domain.IngredientOutOfStock}, nil).Once()
	repository.On("CreditStock", 1, 20.0, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(2).(*domain.StockMovement).ID = 11
		}).
		Return(nil).Once()
	publisher.On("PublishMovement", ctx, mock.Anything).Return(nil).Once()

	mv, err := svc.Credit(ctx, 1, 20, "Purchase order PO-1", "1", "purchase_order")
	assert.NoError(t, err)
	assert.Equal(t, 11, mv.ID)
	assert.Equal(t, domain.MovementIn, mv.MovementType)

	_, err = svc.Credit(ctx, 1, -3, "", "", "")
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

// guardedRepo serializes debits exactly the way the SQL guard does, so the
// service can be hammered concurrently without a database. Status follows
// the same derivation the ledger applies.
type guardedRepo struct {
	mocks.StockRepository

	mu      sync.Mutex
	stock   float64
	status  string
	nextID  int
	applied int
}

func (r *guardedRepo) GetIngredient(id int) (*domain.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &domain.Ingredient{ID: id, Name: "Ayam", Unit: "kg", CurrentStock: r.stock, Status: r.status}, nil
}

func (r *guardedRepo) DebitStock(ingredientID int, quantity float64, mv *domain.StockMovement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stock < quantity {
		return false, nil
	}
	r.stock -= quantity
	r.status = domain.StatusAfterDebit(r.status, r.stock)
	r.nextID++
	r.applied++
	mv.ID = r.nextID
	return true, nil
}

func TestStockService_ConcurrentDebitsNeverOversell(t *testing.T) {
	repo := &guardedRepo{stock: 50}
	svc := service.NewStockService(repo, nil, nil)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Debit(ctx, 1, 10, "load test", "", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrInsufficientStock)
		}
	}

	// 50 units at 10 apiece admits exactly five debits.
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 5, repo.applied)
	assert.GreaterOrEqual(t, repo.stock, 0.0)
}

func (r *guardedRepo) CreditStock(ingredientID int, quantity float64, mv *domain.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stock += quantity
	r.status = domain.StatusAfterCredit(r.status, r.stock)
	r.nextID++
	r.applied++
	mv.ID = r.nextID
	return nil
}

func TestIngredientStatusDerivation(t *testing.T) {
	tests := []struct {
		name      string
		prior     string
		remaining float64
		debit     bool
		expected  string
	}{
		{"debit_to_zero_flips_out_of_stock", domain.IngredientActive, 0, true, domain.IngredientOutOfStock},
		{"debit_leaving_stock_keeps_active", domain.IngredientActive, 12.5, true, domain.IngredientActive},
		{"debit_never_touches_inactive", domain.IngredientInactive, 0, true, domain.IngredientInactive},
		{"credit_revives_out_of_stock", domain.IngredientOutOfStock, 5, false, domain.IngredientActive},
		{"credit_keeps_active", domain.IngredientActive, 40, false, domain.IngredientActive},
		{"credit_never_touches_inactive", domain.IngredientInactive, 5, false, domain.IngredientInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.debit {
				assert.Equal(t, tt.expected, domain.StatusAfterDebit(tt.prior, tt.remaining))
			} else {
				assert.Equal(t, tt.expected, domain.StatusAfterCredit(tt.prior, tt.remaining))
			}
		})
	}
}

func TestStockService_StatusFollowsBalance(t *testing.T) {
	repo := &guardedRepo{stock: 30, status: domain.IngredientActive}
	svc := service.NewStockService(repo, nil, nil)
	ctx := context.Background()

	// Draining the last 30kg marks the ingredient out of stock.
	_, err := svc.Debit(ctx, 1, 30, "Order ORD-7", "", "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, repo.stock)
	assert.Equal(t, domain.IngredientOutOfStock, repo.status)

	// A delivery of 5kg brings it back to active.
	_, err = svc.Credit(ctx, 1, 5, "Purchase order PO-3", "3", "purchase_order")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, repo.stock)
	assert.Equal(t, domain.IngredientActive, repo.status)
}

func TestStockService_DebitKeepsInactiveFlag(t *testing.T) {
	repo := &guardedRepo{stock: 10, status: domain.IngredientInactive}
	svc := service.NewStockService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Debit(ctx, 1, 10, "Order ORD-8", "", "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, repo.stock)
	assert.Equal(t, domain.IngredientInactive, repo.status)

	_, err = svc.Credit(ctx, 1, 4, "Purchase order PO-4", "4", "purchase_order")
	assert.NoError(t, err)
	assert.Equal(t, domain.IngredientInactive, repo.status)
}

func TestStockService_DebitThenCreditRestoresBalance(t *testing.T) {
	repo := &guardedRepo{stock: 30}
	svc := service.NewStockService(repo, nil, nil)
	ctx := context.Background()

	out, err := svc.Debit(ctx, 1, 7.5, "Order ORD-9", "ORD-9", "order")
	assert.NoError(t, err)
	assert.Equal(t, domain.MovementOut, out.MovementType)

	in, err := svc.Credit(ctx, 1, 7.5, "Order ORD-9 cancelled", "ORD-9", "order")
	assert.NoError(t, err)
	assert.Equal(t, domain.MovementIn, in.MovementType)

	assert.Equal(t, 30.0, repo.stock)
	assert.Equal(t, 2, repo.applied)
}

func TestPurchaseService_CreatePurchaseOrder_ComputesTotals(t *testing.T) {
	purchases := mocks.NewPurchaseRepository(t)
	svc := service.NewPurchaseService(purchases, mocks.NewStockServiceInterface(t), mocks.NewGrocerClient(t))

	purchases.On("CreatePurchaseOrder", mock.Anything).Return(nil).Once()

	po := &domain.PurchaseOrder{
		SupplierID:  3,
		OrderNumber: "PO-2026-001",
		Items: []domain.PurchaseOrderItem{
			{IngredientID: 1, Quantity: 10, UnitPrice: 35000},
			{IngredientID: 2, Quantity: 5, UnitPrice: 12000},
		},
	}

	err := svc.CreatePurchaseOrder(po)
	assert.NoError(t, err)
	assert.Equal(t, 350000.0, po.Items[0].TotalPrice)
	assert.Equal(t, 60000.0, po.Items[1].TotalPrice)
	assert.Equal(t, 410000.0, po.TotalAmount)
	assert.Equal(t, "pending", po.Status)
}

func TestPurchaseService_ReceivePurchaseOrder(t *testing.T) {
	purchases := mocks.NewPurchaseRepository(t)
	stock := mocks.NewStockServiceInterface(t)
	svc := service.NewPurchaseService(purchases, stock, mocks.NewGrocerClient(t))
	ctx := context.Background()

	pending := &domain.PurchaseOrder{
		ID: 9, OrderNumber: "PO-2026-002", Status: "pending",
		Items: []domain.PurchaseOrderItem{
			{ID: 91, IngredientID: 1, Quantity: 10},
			{ID: 92, IngredientID: 2, Quantity: 4, ReceivedQuantity: 4},
		},
	}
	received := &domain.PurchaseOrder{ID: 9, OrderNumber: "PO-2026-002", Status: "received"}

	purchases.On("GetPurchaseOrder", 9).Return(pending, nil).Once()
	stock.On("Credit", ctx, 1, 10.0, "Purchase order PO-2026-002", "9", "purchase_order").
		Return(&domain.StockMovement{ID: 21}, nil).Once()
	purchases.On("MarkItemReceived", 91).Return(nil).Once()
	purchases.On("MarkPurchaseOrderReceived", 9).Return(nil).Once()
	purchases.On("GetPurchaseOrder", 9).Return(received, nil).Once()

	po, err := svc.ReceivePurchaseOrder(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, "received", po.Status)
}

func TestPurchaseService_ReceivePurchaseOrder_NotFound(t *testing.T) {
	purchases := mocks.NewPurchaseRepository(t)
	svc := service.NewPurchaseService(purchases, mocks.NewStockServiceInterface(t), mocks.NewGrocerClient(t))

	purchases.On("GetPurchaseOrder", 404).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.ReceivePurchaseOrder(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrPurchaseOrderNotFound)
}

func TestPurchaseService_PurchaseFromGrocer(t *testing.T) {
	purchases := mocks.NewPurchaseRepository(t)
	stock := mocks.NewStockServiceInterface(t)
	grocer := mocks.NewGrocerClient(t)
	svc := service.NewPurchaseService(purchases, stock, grocer)
	ctx := context.Background()

	grocer.On("CheckStock", ctx, "beras-5kg", 3.0).
		Return(&domain.StockCheck{Available: true, CurrentStock: 40}, nil).Once()
	grocer.On("GetProduct", ctx, "beras-5kg").
		Return(&domain.GrocerProduct{ID: "beras-5kg", Name: "Beras Premium", Unit: "sak", Price: 78000}, nil).Once()
	grocer.On("CreateOrder", ctx, "GR-100", mock.Anything).
		Return(&domain.GrocerOrder{ID: "TSO-555", Status: "confirmed", Total: 234000}, nil).Once()

	purchases.On("GetSupplierByName", "Toko Sembako").
		Return(&domain.Supplier{ID: 8, Name: "Toko Sembako"}, nil).Once()
	stock.On("GetIngredientByName", "Beras Premium").
		Return(&domain.Ingredient{ID: 5, Name: "Beras Premium"}, nil).Once()
	purchases.On("CreatePurchaseOrder", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.PurchaseOrder).ID = 12
		}).
		Return(nil).Once()
	stock.On("Credit", ctx, 5, 3.0, "Purchase from grocer: GR-100", "TSO-555", "grocer_order").
		Return(&domain.StockMovement{ID: 31}, nil).Once()
	purchases.On("GetPurchaseOrder", 12).
		Return(&domain.PurchaseOrder{ID: 12, SupplierID: 8, OrderNumber: "GR-100", Status: "ordered"}, nil).Once()

	po, err := svc.PurchaseFromGrocer(ctx, "GR-100", []service.GrocerPurchaseItem{
		{ProductID: "beras-5kg", Quantity: 3},
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 12, po.ID)
}

func TestPurchaseService_PurchaseFromGrocer_StockShort(t *testing.T) {
	grocer := mocks.NewGrocerClient(t)
	svc := service.NewPurchaseService(mocks.NewPurchaseRepository(t), mocks.NewStockServiceInterface(t), grocer)
	ctx := context.Background()

	grocer.On("CheckStock", ctx, "beras-5kg", 50.0).
		Return(&domain.StockCheck{Available: false, Message: "only 12 left"}, nil).Once()

	_, err := svc.PurchaseFromGrocer(ctx, "GR-101", []service.GrocerPurchaseItem{
		{ProductID: "beras-5kg", Quantity: 50},
	}, "")
	assert.ErrorIs(t, err, service.ErrGrocerStockShort)
}
