package storage

import (
	"database/sql"
	"fmt"

	"anugerah-resto/inventory-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateIngredient(ing *domain.Ingredient) error {
	return r.DB.QueryRow(`
		INSERT INTO ingredients (name, unit, category, min_stock_level, current_stock, cost_per_unit, supplier_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, 0), $8)
		RETURNING id, created_at, updated_at`,
		ing.Name, ing.Unit, ing.Category, ing.MinStockLevel, ing.CurrentStock, ing.CostPerUnit, ing.SupplierID, ing.Status,
	).Scan(&ing.ID, &ing.CreatedAt, &ing.UpdatedAt)
}

func (r *PostgresRepository) UpdateIngredient(ing *domain.Ingredient) error {
	return r.DB.QueryRow(`
		UPDATE ingredients
		SET name=$1, unit=$2, category=$3, min_stock_level=$4, cost_per_unit=$5, supplier_id=NULLIF($6, 0), status=$7, updated_at=NOW()
		WHERE id=$8
		RETURNING current_stock, created_at, updated_at`,
		ing.Name, ing.Unit, ing.Category, ing.MinStockLevel, ing.CostPerUnit, ing.SupplierID, ing.Status, ing.ID,
	).Scan(&ing.CurrentStock, &ing.CreatedAt, &ing.UpdatedAt)
}

const ingredientColumns = `
	id, name, unit, COALESCE(category, ''), min_stock_level, current_stock,
	cost_per_unit, COALESCE(supplier_id, 0), status, created_at, updated_at`

func scanIngredient(row interface{ Scan(...any) error }, ing *domain.Ingredient) error {
	return row.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.Category, &ing.MinStockLevel,
		&ing.CurrentStock, &ing.CostPerUnit, &ing.SupplierID, &ing.Status, &ing.CreatedAt, &ing.UpdatedAt)
}

func (r *PostgresRepository) GetIngredient(id int) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := scanIngredient(r.DB.QueryRow(
		"SELECT"+ingredientColumns+" FROM ingredients WHERE id = $1", id), &ing)
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *PostgresRepository) GetIngredientByName(name string) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := scanIngredient(r.DB.QueryRow(
		"SELECT"+ingredientColumns+" FROM ingredients WHERE LOWER(name) = LOWER($1)", name), &ing)
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *PostgresRepository) ListIngredients(category, status string) ([]domain.Ingredient, error) {
	query := "SELECT" + ingredientColumns + " FROM ingredients WHERE 1=1"
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY name"
	return r.queryIngredients(query, args...)
}

func (r *PostgresRepository) LowStock() ([]domain.Ingredient, error) {
	return r.queryIngredients("SELECT" + ingredientColumns + `
		FROM ingredients
		WHERE current_stock <= min_stock_level AND status != 'inactive'
		ORDER BY current_stock / NULLIF(min_stock_level, 0) ASC NULLS FIRST`)
}

func (r *PostgresRepository) OutOfStock() ([]domain.Ingredient, error) {
	return r.queryIngredients("SELECT" + ingredientColumns + `
		FROM ingredients
		WHERE status = 'out_of_stock'
		ORDER BY name`)
}

func (r *PostgresRepository) queryIngredients(query string, args ...any) ([]domain.Ingredient, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		if err := scanIngredient(rows, &ing); err != nil {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

// DebitStock decrements stock and appends the ledger entry in one
// transaction. The decrement is guarded in SQL so concurrent debits cannot
// drive the balance negative: no row returned means insufficient stock.
// Status follows domain.StatusAfterDebit, so a manually inactive
// ingredient is never flipped.
func (r *PostgresRepository) DebitStock(ingredientID int, quantity float64, mv *domain.StockMovement) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var remaining float64
	var status string
	err = tx.QueryRow(`
		UPDATE ingredients
		SET current_stock = current_stock - $1,
		    updated_at = NOW()
		WHERE id = $2 AND current_stock >= $1
		RETURNING current_stock, status`,
		quantity, ingredientID).Scan(&remaining, &status)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if next := domain.StatusAfterDebit(status, remaining); next != status {
		if _, err := tx.Exec(`UPDATE ingredients SET status = $1 WHERE id = $2`, next, ingredientID); err != nil {
			return false, err
		}
	}

	if err := insertMovement(tx, ingredientID, domain.MovementOut, quantity, mv); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// CreditStock increments stock and appends the ledger entry in one
// transaction. Status follows domain.StatusAfterCredit: out_of_stock
// flips back to active, inactive stays put.
func (r *PostgresRepository) CreditStock(ingredientID int, quantity float64, mv *domain.StockMovement) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var remaining float64
	var status string
	err = tx.QueryRow(`
		UPDATE ingredients
		SET current_stock = current_stock + $1,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING current_stock, status`,
		quantity, ingredientID).Scan(&remaining, &status)
	if err != nil {
		return err
	}

	if next := domain.StatusAfterCredit(status, remaining); next != status {
		if _, err := tx.Exec(`UPDATE ingredients SET status = $1 WHERE id = $2`, next, ingredientID); err != nil {
			return err
		}
	}

	if err := insertMovement(tx, ingredientID, domain.MovementIn, quantity, mv); err != nil {
		return err
	}
	return tx.Commit()
}

func insertMovement(tx *sql.Tx, ingredientID int, movementType string, quantity float64, mv *domain.StockMovement) error {
	mv.IngredientID = ingredientID
	mv.MovementType = movementType
	mv.Quantity = quantity
	return tx.QueryRow(`
		INSERT INTO stock_movements (ingredient_id, movement_type, quantity, reason, reference_id, reference_type)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING id, created_at`,
		ingredientID, movementType, quantity, mv.Reason, mv.ReferenceID, mv.ReferenceType,
	).Scan(&mv.ID, &mv.CreatedAt)
}

func (r *PostgresRepository) GetMovement(id int) (*domain.StockMovement, error) {
	var mv domain.StockMovement
	err := r.DB.QueryRow(`
		SELECT id, ingredient_id, movement_type, quantity, COALESCE(reason, ''),
		       COALESCE(reference_id, ''), COALESCE(reference_type, ''), created_at
		FROM stock_movements WHERE id = $1`, id).
		Scan(&mv.ID, &mv.IngredientID, &mv.MovementType, &mv.Quantity, &mv.Reason,
			&mv.ReferenceID, &mv.ReferenceType, &mv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &mv, nil
}

func (r *PostgresRepository) ListMovements(ingredientID int, movementType string, limit int) ([]domain.StockMovement, error) {
	query := `
		SELECT id, ingredient_id, movement_type, quantity, COALESCE(reason, ''),
		       COALESCE(reference_id, ''), COALESCE(reference_type, ''), created_at
		FROM stock_movements WHERE 1=1`
	args := []any{}
	if ingredientID != 0 {
		args = append(args, ingredientID)
		query += fmt.Sprintf(" AND ingredient_id = $%d", len(args))
	}
	if movementType != "" {
		args = append(args, movementType)
		query += fmt.Sprintf(" AND movement_type = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var mv domain.StockMovement
		if err := rows.Scan(&mv.ID, &mv.IngredientID, &mv.MovementType, &mv.Quantity, &mv.Reason,
			&mv.ReferenceID, &mv.ReferenceType, &mv.CreatedAt); err != nil {
			continue
		}
		movements = append(movements, mv)
	}
	return movements, rows.Err()
}

func (r *PostgresRepository) CreateSupplier(s *domain.Supplier) error {
	return r.DB.QueryRow(`
		INSERT INTO suppliers (name, contact_person, email, phone, address, status)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		RETURNING id, created_at`,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Status,
	).Scan(&s.ID, &s.CreatedAt)
}

const supplierColumns = `
	id, name, COALESCE(contact_person, ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(address, ''), status, created_at`

func (r *PostgresRepository) GetSupplierByName(name string) (*domain.Supplier, error) {
	var s domain.Supplier
	err := r.DB.QueryRow("SELECT"+supplierColumns+" FROM suppliers WHERE LOWER(name) = LOWER($1)", name).
		Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) ListSuppliers(status string) ([]domain.Supplier, error) {
	query := "SELECT" + supplierColumns + " FROM suppliers"
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.Status, &s.CreatedAt); err != nil {
			continue
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *PostgresRepository) CreatePurchaseOrder(po *domain.PurchaseOrder) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO purchase_orders (supplier_id, order_number, status, total_amount, notes)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`,
		po.SupplierID, po.OrderNumber, po.Status, po.TotalAmount, po.Notes,
	).Scan(&po.ID, &po.CreatedAt)
	if err != nil {
		return err
	}

	for i := range po.Items {
		item := &po.Items[i]
		item.PurchaseOrderID = po.ID
		err = tx.QueryRow(`
			INSERT INTO purchase_order_items (purchase_order_id, ingredient_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			po.ID, item.IngredientID, item.Quantity, item.UnitPrice, item.TotalPrice,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) GetPurchaseOrder(id int) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := r.DB.QueryRow(`
		SELECT id, supplier_id, order_number, status, total_amount, COALESCE(notes, ''), created_at
		FROM purchase_orders WHERE id = $1`, id).
		Scan(&po.ID, &po.SupplierID, &po.OrderNumber, &po.Status, &po.TotalAmount, &po.Notes, &po.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, purchase_order_id, ingredient_id, quantity, unit_price, total_price, received_quantity
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.PurchaseOrderID, &item.IngredientID,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.ReceivedQuantity); err != nil {
			continue
		}
		po.Items = append(po.Items, item)
	}
	return &po, rows.Err()
}

func (r *PostgresRepository) ListPurchaseOrders(status string) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, order_number, status, total_amount, COALESCE(notes, ''), created_at
		FROM purchase_orders`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	for rows.Next() {
		var po domain.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.SupplierID, &po.OrderNumber, &po.Status, &po.TotalAmount, &po.Notes, &po.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) MarkPurchaseOrderReceived(id int) error {
	_, err := r.DB.Exec("UPDATE purchase_orders SET status = 'received' WHERE id = $1", id)
	return err
}

func (r *PostgresRepository) MarkItemReceived(itemID int) error {
	_, err := r.DB.Exec("UPDATE purchase_order_items SET received_quantity = quantity WHERE id = $1", itemID)
	return err
}
