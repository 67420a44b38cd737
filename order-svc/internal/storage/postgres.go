package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"anugerah-resto/order-svc/internal/domain"
	"anugerah-resto/order-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

var _ service.OrderRepository = (*PostgresRepository)(nil)
var _ service.MenuRepository = (*PostgresRepository)(nil)
var _ service.CartRepository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, order_id, COALESCE(customer_id, ''), COALESCE(customer_name, ''),
	COALESCE(table_number, 0), items, subtotal, tax, service_charge, discount,
	loyalty_points_used, points_earned, total, COALESCE(payment_method, ''),
	payment_status, status, COALESCE(kitchen_status, ''), kitchen_order_created,
	stock_updated, loyalty_updated, COALESCE(steps, '[]'), COALESCE(notes, ''),
	created_at, updated_at, completed_at`

func scanOrder(row interface{ Scan(...any) error }, order *domain.Order) error {
	var itemsJSON, stepsJSON []byte
	var completedAt sql.NullTime
	if err := row.Scan(
		&order.ID, &order.OrderID, &order.CustomerID, &order.CustomerName,
		&order.TableNumber, &itemsJSON, &order.Subtotal, &order.Tax,
		&order.ServiceCharge, &order.Discount, &order.LoyaltyPointsUsed,
		&order.PointsEarned, &order.Total, &order.PaymentMethod,
		&order.PaymentStatus, &order.Status, &order.KitchenStatus,
		&order.KitchenOrderCreated, &order.StockUpdated, &order.LoyaltyUpdated,
		&stepsJSON, &order.Notes, &order.CreatedAt, &order.UpdatedAt, &completedAt,
	); err != nil {
		return err
	}
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}
	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return fmt.Errorf("failed to decode order items: %w", err)
	}
	if err := json.Unmarshal(stepsJSON, &order.Steps); err != nil {
		return fmt.Errorf("failed to decode saga steps: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (order_id, customer_id, customer_name, table_number, items,
			subtotal, tax, service_charge, discount, loyalty_points_used, total,
			payment_method, payment_status, status, notes, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, 0), $5,
			$6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14, NULLIF($15, ''), NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		order.OrderID, order.CustomerID, order.CustomerName, order.TableNumber, itemsJSON,
		order.Subtotal, order.Tax, order.ServiceCharge, order.Discount,
		order.LoyaltyPointsUsed, order.Total, order.PaymentMethod,
		order.PaymentStatus, order.Status, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *PostgresRepository) GetOrder(orderID string) (*domain.Order, error) {
	order := &domain.Order{}
	query := fmt.Sprintf("SELECT %s FROM orders WHERE order_id = $1", orderColumns)
	if err := scanOrder(r.DB.QueryRow(query, orderID), order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListOrders(status string, limit int) ([]domain.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders", orderColumns)
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			log.Printf("failed to scan order row: %v", err)
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateOrderOutcome persists the saga step log and the downstream outcome
// flags after the create saga finished.
func (r *PostgresRepository) UpdateOrderOutcome(order *domain.Order) error {
	stepsJSON, err := json.Marshal(order.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode saga steps: %w", err)
	}

	query := `
		UPDATE orders
		SET kitchen_order_created = $1, stock_updated = $2, loyalty_updated = $3,
			points_earned = $4, kitchen_status = NULLIF($5, ''), steps = $6, updated_at = NOW()
		WHERE order_id = $7`
	_, err = r.DB.Exec(query,
		order.KitchenOrderCreated, order.StockUpdated, order.LoyaltyUpdated,
		order.PointsEarned, order.KitchenStatus, stepsJSON, order.OrderID)
	return err
}

func (r *PostgresRepository) UpdateOrderStatus(orderID, status string, completed bool) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW(),
			completed_at = CASE WHEN $2 THEN NOW() ELSE completed_at END
		WHERE order_id = $3`
	if _, err := r.DB.Exec(query, status, completed, orderID); err != nil {
		return nil, err
	}
	return r.GetOrder(orderID)
}

func (r *PostgresRepository) UpdateKitchenStatus(orderID, kitchenStatus string) error {
	_, err := r.DB.Exec(
		"UPDATE orders SET kitchen_status = $1, updated_at = NOW() WHERE order_id = $2",
		kitchenStatus, orderID)
	return err
}

func (r *PostgresRepository) StoreQRCode(orderID string, png []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE order_id = $2", png, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var png []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE order_id = $1", orderID).Scan(&png)
	if err != nil {
		return nil, err
	}
	return png, nil
}

const menuColumns = `id, menu_id, name, COALESCE(category, ''), price,
	COALESCE(description, ''), available, COALESCE(prep_minutes, 0),
	COALESCE(ingredients, '[]'), created_at, updated_at`

func scanMenu(row interface{ Scan(...any) error }, menu *domain.Menu) error {
	var ingredientsJSON []byte
	if err := row.Scan(
		&menu.ID, &menu.MenuID, &menu.Name, &menu.Category, &menu.Price,
		&menu.Description, &menu.Available, &menu.PrepMinutes,
		&ingredientsJSON, &menu.CreatedAt, &menu.UpdatedAt,
	); err != nil {
		return err
	}
	if err := json.Unmarshal(ingredientsJSON, &menu.Ingredients); err != nil {
		return fmt.Errorf("failed to decode menu ingredients: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InsertMenu(menu *domain.Menu) error {
	ingredientsJSON, err := json.Marshal(menu.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode menu ingredients: %w", err)
	}

	query := `
		INSERT INTO menus (menu_id, name, category, price, description, available,
			prep_minutes, ingredients, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, NULLIF($7, 0), $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		menu.MenuID, menu.Name, menu.Category, menu.Price, menu.Description,
		menu.Available, menu.PrepMinutes, ingredientsJSON,
	).Scan(&menu.ID, &menu.CreatedAt, &menu.UpdatedAt)
}

func (r *PostgresRepository) GetMenu(menuID string) (*domain.Menu, error) {
	menu := &domain.Menu{}
	query := fmt.Sprintf("SELECT %s FROM menus WHERE menu_id = $1", menuColumns)
	if err := scanMenu(r.DB.QueryRow(query, menuID), menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (r *PostgresRepository) ListMenus(category string, availableOnly bool) ([]domain.Menu, error) {
	query := fmt.Sprintf("SELECT %s FROM menus WHERE 1=1", menuColumns)
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if availableOnly {
		query += " AND available = true"
	}
	query += " ORDER BY category, name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		var menu domain.Menu
		if err := scanMenu(rows, &menu); err != nil {
			log.Printf("failed to scan menu row: %v", err)
			continue
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) UpdateMenu(menu *domain.Menu) error {
	ingredientsJSON, err := json.Marshal(menu.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode menu ingredients: %w", err)
	}

	query := `
		UPDATE menus
		SET name = $1, category = NULLIF($2, ''), price = $3, description = NULLIF($4, ''),
			available = $5, prep_minutes = NULLIF($6, 0), ingredients = $7, updated_at = NOW()
		WHERE menu_id = $8`
	_, err = r.DB.Exec(query,
		menu.Name, menu.Category, menu.Price, menu.Description,
		menu.Available, menu.PrepMinutes, ingredientsJSON, menu.MenuID)
	return err
}

const cartColumns = `id, COALESCE(customer_id, ''), COALESCE(table_number, 0),
	status, items, created_at, updated_at`

func scanCart(row interface{ Scan(...any) error }, cart *domain.Cart) error {
	var itemsJSON []byte
	if err := row.Scan(
		&cart.ID, &cart.CustomerID, &cart.TableNumber, &cart.Status,
		&itemsJSON, &cart.CreatedAt, &cart.UpdatedAt,
	); err != nil {
		return err
	}
	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return fmt.Errorf("failed to decode cart items: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InsertCart(cart *domain.Cart) error {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	query := `
		INSERT INTO carts (customer_id, table_number, status, items, created_at, updated_at)
		VALUES (NULLIF($1, ''), NULLIF($2, 0), $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query, cart.CustomerID, cart.TableNumber, cart.Status, itemsJSON).
		Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
}

func (r *PostgresRepository) GetCart(cartID int) (*domain.Cart, error) {
	cart := &domain.Cart{}
	query := fmt.Sprintf("SELECT %s FROM carts WHERE id = $1", cartColumns)
	if err := scanCart(r.DB.QueryRow(query, cartID), cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *PostgresRepository) UpdateCartItems(cartID int, items []domain.CartItem) error {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}
	_, err = r.DB.Exec(
		"UPDATE carts SET items = $1, updated_at = NOW() WHERE id = $2",
		itemsJSON, cartID)
	return err
}

func (r *PostgresRepository) SetCartStatus(cartID int, status string) error {
	_, err := r.DB.Exec(
		"UPDATE carts SET status = $1, updated_at = NOW() WHERE id = $2",
		status, cartID)
	return err
}
