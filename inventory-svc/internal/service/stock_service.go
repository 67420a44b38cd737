package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"anugerah-resto/inventory-svc/internal/domain"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

type StockService struct {
	repository StockRepository
	marker     DebitMarker
	publisher  MovementPublisher
}

func NewStockService(repository StockRepository, marker DebitMarker, publisher MovementPublisher) *StockService {
	return &StockService{
		repository: repository,
		marker:     marker,
		publisher:  publisher,
	}
}

// CheckAvailability reports whether quantity can be debited right now.
// It never mutates the ledger.
func (s *StockService) CheckAvailability(ingredientID int, quantity float64) (*domain.StockCheck, error) {
	ing, err := s.repository.GetIngredient(ingredientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}

	check := &domain.StockCheck{
		Available:         ing.CurrentStock >= quantity,
		CurrentStock:      ing.CurrentStock,
		RequestedQuantity: quantity,
	}
	if check.Available {
		check.Message = fmt.Sprintf("Stock available: %.2f %s", ing.CurrentStock, ing.Unit)
	} else {
		check.Message = fmt.Sprintf("Insufficient stock. Available: %.2f %s, Requested: %.2f %s",
			ing.CurrentStock, ing.Unit, quantity, ing.Unit)
	}
	return check, nil
}

// Debit removes quantity from the ingredient's stock and appends an `out`
// movement. The availability check and the decrement are applied as one
// atomic unit; concurrent debits against the same ingredient serialize at
// the row, so stock can never go negative.
func (s *StockService) Debit(ctx context.Context, ingredientID int, quantity float64, reason, referenceID, referenceType string) (*domain.StockMovement, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidQuantity, quantity)
	}

	// A debit carrying a reference is idempotent: replaying it returns the
	// movement recorded the first time.
	var markerKey string
	if referenceID != "" && s.marker != nil {
		markerKey = s.marker.Key(referenceID, ingredientID)
		if movementID, ok, err := s.marker.Get(ctx, markerKey); err == nil && ok {
			mv, getErr := s.repository.GetMovement(movementID)
			if getErr == nil {
				log.Printf("stock: debit replay for reference %s ingredient %d, returning movement %d",
					referenceID, ingredientID, movementID)
				return mv, nil
			}
		}
	}

	ing, err := s.repository.GetIngredient(ingredientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}

	mv := &domain.StockMovement{
		IngredientID:  ingredientID,
		MovementType:  domain.MovementOut,
		Quantity:      quantity,
		Reason:        reason,
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
	}
	applied, err := s.repository.DebitStock(ingredientID, quantity, mv)
	if err != nil {
		return nil, fmt.Errorf("failed to debit stock: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: available %.2f, requested %.2f", ErrInsufficientStock, ing.CurrentStock, quantity)
	}

	if markerKey != "" {
		if err := s.marker.Set(ctx, markerKey, mv.ID); err != nil {
			log.Printf("Warning: failed to record debit marker %s: %v", markerKey, err)
		}
	}
	s.publish(ctx, mv)
	return mv, nil
}

// Credit adds quantity to the ingredient's stock and appends an `in`
// movement. It only fails when the ingredient is missing or the quantity
// is not positive.
func (s *StockService) Credit(ctx context.Context, ingredientID int, quantity float64, reason, referenceID, referenceType string) (*domain.StockMovement, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidQuantity, quantity)
	}

	if _, err := s.repository.GetIngredient(ingredientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}

	mv := &domain.StockMovement{
		IngredientID:  ingredientID,
		MovementType:  domain.MovementIn,
		Quantity:      quantity,
		Reason:        reason,
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
	}
	if err := s.repository.CreditStock(ingredientID, quantity, mv); err != nil {
		return nil, fmt.Errorf("failed to credit stock: %w", err)
	}

	s.publish(ctx, mv)
	return mv, nil
}

func (s *StockService) publish(ctx context.Context, mv *domain.StockMovement) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishMovement(ctx, domain.MovementEvent{
		Type:          "stock_movement",
		IngredientID:  mv.IngredientID,
		MovementType:  mv.MovementType,
		Quantity:      mv.Quantity,
		ReferenceID:   mv.ReferenceID,
		ReferenceType: mv.ReferenceType,
		Timestamp:     time.Now(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish movement for ingredient %d: %v", mv.IngredientID, err)
	}
}

func (s *StockService) CreateIngredient(ing *domain.Ingredient) error {
	if ing.Status == "" {
		ing.Status = domain.IngredientActive
	}
	return s.repository.CreateIngredient(ing)
}

func (s *StockService) UpdateIngredient(ing *domain.Ingredient) error {
	err := s.repository.UpdateIngredient(ing)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrIngredientNotFound
	}
	return err
}

func (s *StockService) GetIngredient(id int) (*domain.Ingredient, error) {
	ing, err := s.repository.GetIngredient(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIngredientNotFound
	}
	return ing, err
}

func (s *StockService) GetIngredientByName(name string) (*domain.Ingredient, error) {
	ing, err := s.repository.GetIngredientByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIngredientNotFound
	}
	return ing, err
}

func (s *StockService) ListIngredients(category, status string) ([]domain.Ingredient, error) {
	return s.repository.ListIngredients(category, status)
}

func (s *StockService) LowStock() ([]domain.Ingredient, error) {
	return s.repository.LowStock()
}

func (s *StockService) OutOfStock() ([]domain.Ingredient, error) {
	return s.repository.OutOfStock()
}

func (s *StockService) ListMovements(ingredientID int, movementType string) ([]domain.StockMovement, error) {
	return s.repository.ListMovements(ingredientID, movementType, 100)
}
