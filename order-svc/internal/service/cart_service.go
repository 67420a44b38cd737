package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"anugerah-resto/order-svc/internal/domain"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrCartClosed   = errors.New("cart is no longer active")
	ErrCartEmpty    = errors.New("cart is empty")
)

type CartService struct {
	carts  CartRepository
	menus  MenuRepository
	orders OrderServiceInterface
}

func NewCartService(carts CartRepository, menus MenuRepository, orders OrderServiceInterface) *CartService {
	return &CartService{carts: carts, menus: menus, orders: orders}
}

func (s *CartService) CreateCart(customerID string, tableNumber int) (*domain.Cart, error) {
	cart := &domain.Cart{
		CustomerID:  customerID,
		TableNumber: tableNumber,
		Status:      domain.CartActive,
		Items:       []domain.CartItem{},
	}
	if err := s.carts.InsertCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) GetCart(cartID int) (*domain.Cart, error) {
	cart, err := s.carts.GetCart(cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrCartNotFound, cartID)
		}
		return nil, err
	}
	return cart, nil
}

// AddItem merges into an existing line for the same menu item instead of
// appending a duplicate.
func (s *CartService) AddItem(cartID int, menuID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	cart, err := s.activeCart(cartID)
	if err != nil {
		return nil, err
	}

	menu, err := s.menus.GetMenu(menuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrMenuNotFound, menuID)
		}
		return nil, err
	}
	if !menu.Available {
		return nil, fmt.Errorf("%w: %s", ErrMenuUnavailable, menu.Name)
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].MenuID == menuID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			MenuID:   menu.MenuID,
			Name:     menu.Name,
			Price:    menu.Price,
			Quantity: quantity,
		})
	}

	if err := s.carts.UpdateCartItems(cart.ID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemQuantity sets the quantity for a line; zero or negative removes
// it.
func (s *CartService) UpdateItemQuantity(cartID int, menuID string, quantity int) (*domain.Cart, error) {
	cart, err := s.activeCart(cartID)
	if err != nil {
		return nil, err
	}

	found := false
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.MenuID == menuID {
			found = true
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s is not in the cart", ErrMenuNotFound, menuID)
	}
	cart.Items = items

	if err := s.carts.UpdateCartItems(cart.ID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

// Checkout turns the cart into an order and marks the cart completed. The
// cart is only closed when the order was persisted.
func (s *CartService) Checkout(ctx context.Context, cartID int, input CreateOrderInput) (*domain.CreateOrderResult, error) {
	cart, err := s.activeCart(cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	if input.CustomerID == "" {
		input.CustomerID = cart.CustomerID
	}
	if input.TableNumber == 0 {
		input.TableNumber = cart.TableNumber
	}
	input.Items = make([]CreateOrderItemInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		input.Items = append(input.Items, CreateOrderItemInput{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
		})
	}

	result, err := s.orders.CreateOrder(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.carts.SetCartStatus(cart.ID, domain.CartCompleted); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CartService) activeCart(cartID int) (*domain.Cart, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	if cart.Status != domain.CartActive {
		return nil, fmt.Errorf("%w: cart %d is %s", ErrCartClosed, cartID, cart.Status)
	}
	return cart, nil
}
