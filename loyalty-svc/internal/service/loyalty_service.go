package service

import (
	"database/sql"
	"errors"
	"fmt"

	"anugerah-resto/loyalty-svc/internal/domain"
)

var (
	ErrNotEnrolled        = errors.New("customer is not enrolled")
	ErrAlreadyEnrolled    = errors.New("customer is already enrolled")
	ErrInvalidPoints      = errors.New("points must be greater than zero")
	ErrInsufficientPoints = errors.New("insufficient points")
)

type LoyaltyService struct {
	repository LoyaltyRepository
}

func NewLoyaltyService(repository LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{repository: repository}
}

func (s *LoyaltyService) Enroll(customerID string) (*domain.Account, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer_id is required")
	}

	if _, err := s.repository.GetAccount(customerID); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyEnrolled, customerID)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	account := &domain.Account{
		CustomerID: customerID,
		Tier:       domain.TierBronze,
		Status:     "active",
	}
	if err := s.repository.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (s *LoyaltyService) GetAccount(customerID string) (*domain.Account, error) {
	account, err := s.repository.GetAccount(customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotEnrolled, customerID)
	}
	return account, err
}

// EarnPoints adds points to the account, re-derives the tier from the new
// lifetime total and appends an earn transaction, all in one database
// transaction.
func (s *LoyaltyService) EarnPoints(customerID string, points int, orderID, description string) (*domain.Account, error) {
	if points <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPoints, points)
	}

	account, err := s.GetAccount(customerID)
	if err != nil {
		return nil, err
	}

	tier := domain.TierForPoints(account.TotalPoints + points)
	tx := &domain.Transaction{
		CustomerID:  customerID,
		Type:        domain.TxEarn,
		Points:      points,
		OrderID:     orderID,
		Description: description,
	}
	if err := s.repository.ApplyEarn(customerID, points, tier, tx); err != nil {
		return nil, fmt.Errorf("failed to apply earn: %w", err)
	}
	return s.GetAccount(customerID)
}

// RedeemPoints spends from the available balance. The balance guard runs in
// the database so concurrent redemptions cannot overdraw the account.
func (s *LoyaltyService) RedeemPoints(customerID string, points int, orderID, description string) (*domain.Account, error) {
	if points <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPoints, points)
	}

	account, err := s.GetAccount(customerID)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		CustomerID:  customerID,
		Type:        domain.TxRedeem,
		Points:      points,
		OrderID:     orderID,
		Description: description,
	}
	applied, err := s.repository.ApplyRedeem(customerID, points, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply redeem: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: available %d, requested %d",
			ErrInsufficientPoints, account.AvailablePoints(), points)
	}
	return s.GetAccount(customerID)
}

func (s *LoyaltyService) History(customerID string) ([]domain.Transaction, error) {
	if _, err := s.GetAccount(customerID); err != nil {
		return nil, err
	}
	return s.repository.ListTransactions(customerID)
}
