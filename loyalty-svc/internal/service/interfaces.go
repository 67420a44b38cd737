package service

import "anugerah-resto/loyalty-svc/internal/domain"

type LoyaltyServiceInterface interface {
	Enroll(customerID string) (*domain.Account, error)
	GetAccount(customerID string) (*domain.Account, error)
	EarnPoints(customerID string, points int, orderID, description string) (*domain.Account, error)
	RedeemPoints(customerID string, points int, orderID, description string) (*domain.Account, error)
	History(customerID string) ([]domain.Transaction, error)
}

type LoyaltyRepository interface {
	CreateAccount(account *domain.Account) error
	GetAccount(customerID string) (*domain.Account, error)
	// ApplyEarn adds points, stores the re-derived tier and appends the earn
	// transaction in one database transaction.
	ApplyEarn(customerID string, points int, tier string, tx *domain.Transaction) error
	// ApplyRedeem bumps redeemed points and appends the redeem transaction,
	// guarded so the available balance cannot go negative. applied=false
	// means the guard rejected the redemption.
	ApplyRedeem(customerID string, points int, tx *domain.Transaction) (applied bool, err error)
	ListTransactions(customerID string) ([]domain.Transaction, error)
}

var _ LoyaltyServiceInterface = (*LoyaltyService)(nil)
