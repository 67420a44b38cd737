package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"anugerah-resto/order-svc/internal/domain"
)

type MenuService struct {
	menus     MenuRepository
	inventory InventoryClient
}

func NewMenuService(menus MenuRepository, inventory InventoryClient) *MenuService {
	return &MenuService{menus: menus, inventory: inventory}
}

func (s *MenuService) CreateMenu(menu *domain.Menu) error {
	if menu.MenuID == "" || menu.Name == "" {
		return errors.New("menu_id and name are required")
	}
	if menu.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return s.menus.InsertMenu(menu)
}

func (s *MenuService) GetMenu(menuID string) (*domain.Menu, error) {
	menu, err := s.menus.GetMenu(menuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrMenuNotFound, menuID)
		}
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) ListMenus(category string, availableOnly bool) ([]domain.Menu, error) {
	return s.menus.ListMenus(category, availableOnly)
}

func (s *MenuService) UpdateMenu(menu *domain.Menu) error {
	if _, err := s.GetMenu(menu.MenuID); err != nil {
		return err
	}
	return s.menus.UpdateMenu(menu)
}

func (s *MenuService) SetAvailability(menuID string, available bool) (*domain.Menu, error) {
	menu, err := s.GetMenu(menuID)
	if err != nil {
		return nil, err
	}
	menu.Available = available
	if err := s.menus.UpdateMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// CheckMenuStock fans out to the inventory service for every ingredient
// the menu item needs and reports whether the requested quantity can be
// cooked. An unreachable inventory marks the ingredient unavailable rather
// than failing the whole check.
func (s *MenuService) CheckMenuStock(ctx context.Context, menuID string, quantity int) (*domain.MenuStockCheck, error) {
	if quantity <= 0 {
		quantity = 1
	}
	menu, err := s.GetMenu(menuID)
	if err != nil {
		return nil, err
	}

	check := &domain.MenuStockCheck{
		MenuID:      menu.MenuID,
		Quantity:    quantity,
		Available:   true,
		Ingredients: []domain.IngredientStockCheck{},
	}
	for _, req := range menu.Ingredients {
		required := req.Quantity * float64(quantity)
		result, err := s.inventory.CheckStock(ctx, req.IngredientID, required)
		if err != nil {
			check.Available = false
			check.Ingredients = append(check.Ingredients, domain.IngredientStockCheck{
				IngredientID: req.IngredientID,
				Required:     required,
				Available:    false,
				Message:      err.Error(),
			})
			continue
		}
		if !result.Available {
			check.Available = false
		}
		check.Ingredients = append(check.Ingredients, domain.IngredientStockCheck{
			IngredientID: req.IngredientID,
			Required:     required,
			CurrentStock: result.CurrentStock,
			Available:    result.Available,
			Message:      result.Message,
		})
	}
	return check, nil
}
