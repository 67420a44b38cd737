package tests

import (
	"database/sql"
	"testing"

	"anugerah-resto/loyalty-svc/internal/domain"
	"anugerah-resto/loyalty-svc/internal/mocks"
	"anugerah-resto/loyalty-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTierForPoints(t *testing.T) {
	tests := []struct {
		points int
		tier   string
	}{
		{0, domain.TierBronze},
		{249, domain.TierBronze},
		{250, domain.TierSilver},
		{499, domain.TierSilver},
		{500, domain.TierGold},
		{999, domain.TierGold},
		{1000, domain.TierPlatinum},
		{5000, domain.TierPlatinum},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.tier, domain.TierForPoints(testCase.points), "points=%d", testCase.points)
	}
}

func TestAccount_AvailablePoints(t *testing.T) {
	account := domain.Account{TotalPoints: 300, RedeemedPoints: 120}
	assert.Equal(t, 180, account.AvailablePoints())
}

func TestLoyaltyService_Enroll(t *testing.T) {
	repository := mocks.NewLoyaltyRepository(t)
	svc := service.NewLoyaltyService(repository)

	repository.On("GetAccount", "cust-1").Return(nil, sql.ErrNoRows).Once()
	repository.On("CreateAccount", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Account).ID = 1
		}).
		Return(nil).Once()

	account, err := svc.Enroll("cust-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.TierBronze, account.Tier)
	assert.Equal(t, "active", account.Status)

	repository.On("GetAccount", "cust-1").
		Return(&domain.Account{ID: 1, CustomerID: "cust-1"}, nil).Once()

	_, err = svc.Enroll("cust-1")
	assert.ErrorIs(t, err, service.ErrAlreadyEnrolled)
}

func TestLoyaltyService_EarnPoints(t *testing.T) {
	repository := mocks.NewLoyaltyRepository(t)
	svc := service.NewLoyaltyService(repository)

	tests := []struct {
		name          string
		points        int
		prepareMocks  func()
		expectedTier  string
		expectedError error
	}{
		{
			name:   "earn_crosses_silver_threshold",
			points: 30,
			prepareMocks: func() {
				repository.On("GetAccount", "cust-1").
					Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 230, Tier: domain.TierBronze}, nil).Once()
				repository.On("ApplyEarn", "cust-1", 30, domain.TierSilver, mock.Anything).Return(nil).Once()
				repository.On("GetAccount", "cust-1").
					Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 260, Tier: domain.TierSilver}, nil).Once()
			},
			expectedTier: domain.TierSilver,
		},
		{
			name:          "zero_points",
			points:        0,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidPoints,
		},
		{
			name:   "not_enrolled",
			points: 10,
			prepareMocks: func() {
				repository.On("GetAccount", "cust-1").Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrNotEnrolled,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			account, err := svc.EarnPoints("cust-1", testCase.points, "ORD-001", "Order points")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedTier, account.Tier)
		})
	}
}

func TestLoyaltyService_RedeemPoints(t *testing.T) {
	repository := mocks.NewLoyaltyRepository(t)
	svc := service.NewLoyaltyService(repository)

	tests := []struct {
		name          string
		points        int
		prepareMocks  func()
		expectedError error
	}{
		{
			name:   "success",
			points: 50,
			prepareMocks: func() {
				repository.On("GetAccount", "cust-1").
					Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 300, RedeemedPoints: 100}, nil).Once()
				repository.On("ApplyRedeem", "cust-1", 50, mock.MatchedBy(func(tx *domain.Transaction) bool {
					return tx.Type == domain.TxRedeem && tx.OrderID == "ORD-12"
				})).Return(true, nil).Once()
				repository.On("GetAccount", "cust-1").
					Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 300, RedeemedPoints: 150}, nil).Once()
			},
		},
		{
			name:   "insufficient_balance",
			points: 500,
			prepareMocks: func() {
				repository.On("GetAccount", "cust-1").
					Return(&domain.Account{CustomerID: "cust-1", TotalPoints: 300, RedeemedPoints: 100}, nil).Once()
				repository.On("ApplyRedeem", "cust-1", 500, mock.Anything).Return(false, nil).Once()
			},
			expectedError: service.ErrInsufficientPoints,
		},
		{
			name:          "negative_points",
			points:        -5,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidPoints,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			account, err := svc.RedeemPoints("cust-1", testCase.points, "ORD-12", "Discount")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 150, account.AvailablePoints())
		})
	}
}

func TestLoyaltyService_History(t *testing.T) {
	repository := mocks.NewLoyaltyRepository(t)
	svc := service.NewLoyaltyService(repository)

	repository.On("GetAccount", "cust-1").
		Return(&domain.Account{CustomerID: "cust-1"}, nil).Once()
	repository.On("ListTransactions", "cust-1").
		Return([]domain.Transaction{
			{ID: 2, Type: domain.TxRedeem, Points: 50},
			{ID: 1, Type: domain.TxEarn, Points: 100, OrderID: "ORD-001"},
		}, nil).Once()

	transactions, err := svc.History("cust-1")
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
}
