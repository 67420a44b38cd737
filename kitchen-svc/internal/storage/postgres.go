package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"anugerah-resto/kitchen-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) InsertTicket(ticket *domain.Ticket) error {
	items, err := json.Marshal(ticket.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	return r.DB.QueryRow(`
		INSERT INTO kitchen_tickets (order_id, table_number, status, items, priority, estimated_minutes, notes)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, NULLIF($6, 0), NULLIF($7, ''))
		RETURNING id, created_at, updated_at`,
		ticket.OrderID, ticket.TableNumber, ticket.Status, items, ticket.Priority, ticket.EstimatedMinutes, ticket.Notes,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

const ticketColumns = `
	id, order_id, COALESCE(table_number, 0), status, items, priority,
	COALESCE(estimated_minutes, 0), COALESCE(chef_id, 0), COALESCE(notes, ''),
	created_at, updated_at`

func scanTicket(row interface{ Scan(...any) error }) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var items []byte
	err := row.Scan(&ticket.ID, &ticket.OrderID, &ticket.TableNumber, &ticket.Status, &items,
		&ticket.Priority, &ticket.EstimatedMinutes, &ticket.ChefID, &ticket.Notes,
		&ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &ticket.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items for ticket %d: %w", ticket.ID, err)
		}
	}
	return &ticket, nil
}

func (r *PostgresRepository) GetTicket(id int) (*domain.Ticket, error) {
	return scanTicket(r.DB.QueryRow(
		"SELECT"+ticketColumns+" FROM kitchen_tickets WHERE id = $1", id))
}

func (r *PostgresRepository) GetTicketByOrderID(orderID string) (*domain.Ticket, error) {
	return scanTicket(r.DB.QueryRow(
		"SELECT"+ticketColumns+` FROM kitchen_tickets
		WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1`, orderID))
}

func (r *PostgresRepository) HasOpenTicket(orderID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM kitchen_tickets
			WHERE order_id = $1 AND status NOT IN ('completed', 'cancelled'))`, orderID).
		Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListTickets(status string) ([]domain.Ticket, error) {
	query := "SELECT" + ticketColumns + " FROM kitchen_tickets"
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY priority DESC, created_at ASC"
	return r.queryTickets(query, args...)
}

func (r *PostgresRepository) ListTicketsByChef(chefID int) ([]domain.Ticket, error) {
	return r.queryTickets("SELECT"+ticketColumns+` FROM kitchen_tickets
		WHERE chef_id = $1 ORDER BY priority DESC, created_at ASC`, chefID)
}

func (r *PostgresRepository) queryTickets(query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			continue
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

// AssignChef books the chef onto a pending ticket. Both rows are locked for
// the duration of the transaction so the pending check, the status move and
// the counter bump act as one unit.
func (r *PostgresRepository) AssignChef(ticketID, chefID int) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRow("SELECT status FROM kitchen_tickets WHERE id = $1 FOR UPDATE", ticketID).Scan(&status)
	if err != nil {
		return false, err
	}
	if status != domain.TicketPending {
		return false, nil
	}

	capacity, err := lockChefCapacity(tx, chefID)
	if err != nil {
		return false, err
	}
	capacity.Acquire()
	if err := storeChefCapacity(tx, chefID, capacity); err != nil {
		return false, err
	}

	_, err = tx.Exec(`
		UPDATE kitchen_tickets SET chef_id = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		chefID, domain.TicketPreparing, ticketID)
	if err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *PostgresRepository) UpdateTicketStatus(ticketID int, from, to string) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE kitchen_tickets SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`,
		to, ticketID, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *PostgresRepository) ReleaseChef(chefID int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	capacity, err := lockChefCapacity(tx, chefID)
	if err != nil {
		return err
	}
	capacity.Release()
	if err := storeChefCapacity(tx, chefID, capacity); err != nil {
		return err
	}
	return tx.Commit()
}

func lockChefCapacity(tx *sql.Tx, chefID int) (*domain.ChefCapacity, error) {
	var capacity domain.ChefCapacity
	err := tx.QueryRow("SELECT current_orders FROM chefs WHERE id = $1 FOR UPDATE", chefID).
		Scan(&capacity.BusyCount)
	if err != nil {
		return nil, err
	}
	return &capacity, nil
}

func storeChefCapacity(tx *sql.Tx, chefID int, capacity *domain.ChefCapacity) error {
	_, err := tx.Exec("UPDATE chefs SET current_orders = $1, status = $2 WHERE id = $3",
		capacity.BusyCount, capacity.Status(), chefID)
	return err
}

func (r *PostgresRepository) SetEstimatedTime(ticketID, minutes int) error {
	_, err := r.DB.Exec(`
		UPDATE kitchen_tickets SET estimated_minutes = $1, updated_at = NOW() WHERE id = $2`,
		minutes, ticketID)
	return err
}

func (r *PostgresRepository) CreateChef(chef *domain.Chef) error {
	return r.DB.QueryRow(`
		INSERT INTO chefs (name, specialty, status, current_orders)
		VALUES ($1, NULLIF($2, ''), $3, 0)
		RETURNING id, created_at`,
		chef.Name, chef.Specialty, chef.Status,
	).Scan(&chef.ID, &chef.CreatedAt)
}

func (r *PostgresRepository) GetChef(id int) (*domain.Chef, error) {
	var chef domain.Chef
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(specialty, ''), status, current_orders, created_at
		FROM chefs WHERE id = $1`, id).
		Scan(&chef.ID, &chef.Name, &chef.Specialty, &chef.Status, &chef.CurrentOrders, &chef.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *PostgresRepository) ListChefs(status string) ([]domain.Chef, error) {
	query := `
		SELECT id, name, COALESCE(specialty, ''), status, current_orders, created_at
		FROM chefs`
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

	var chefs []domain.Chef
	for rows.Next() {
		var chef domain.Chef
		if err := rows.Scan(&chef.ID, &chef.Name, &chef.Specialty, &chef.Status, &chef.CurrentOrders, &chef.CreatedAt); err != nil {
			continue
		}
		chefs = append(chefs, chef)
	}
	return chefs, rows.Err()
}
