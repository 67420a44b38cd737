package storage

import (
	"database/sql"

	"anugerah-resto/loyalty-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateAccount(account *domain.Account) error {
	return r.DB.QueryRow(`
		INSERT INTO loyalty_accounts (customer_id, total_points, redeemed_points, tier, status)
		VALUES ($1, 0, 0, $2, $3)
		RETURNING id, created_at, updated_at`,
		account.CustomerID, account.Tier, account.Status,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *PostgresRepository) GetAccount(customerID string) (*domain.Account, error) {
	var account domain.Account
	err := r.DB.QueryRow(`
		SELECT id, customer_id, total_points, redeemed_points, tier, status, created_at, updated_at
		FROM loyalty_accounts WHERE customer_id = $1`, customerID).
		Scan(&account.ID, &account.CustomerID, &account.TotalPoints, &account.RedeemedPoints,
			&account.Tier, &account.Status, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepository) ApplyEarn(customerID string, points int, tier string, tx *domain.Transaction) error {
	dbTx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer dbTx.Rollback()

	_, err = dbTx.Exec(`
		UPDATE loyalty_accounts
		SET total_points = total_points + $1, tier = $2, updated_at = NOW()
		WHERE customer_id = $3`,
		points, tier, customerID)
	if err != nil {
		return err
	}

	if err := insertTransaction(dbTx, tx); err != nil {
		return err
	}
	return dbTx.Commit()
}

// ApplyRedeem keeps the balance guard in SQL: the update only applies while
// available points cover the redemption, so concurrent redeems serialize at
// the row and cannot overdraw.
func (r *PostgresRepository) ApplyRedeem(customerID string, points int, tx *domain.Transaction) (bool, error) {
	dbTx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer dbTx.Rollback()

	result, err := dbTx.Exec(`
		UPDATE loyalty_accounts
		SET redeemed_points = redeemed_points + $1, updated_at = NOW()
		WHERE customer_id = $2 AND total_points - redeemed_points >= $1`,
		points, customerID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if err := insertTransaction(dbTx, tx); err != nil {
		return false, err
	}
	return true, dbTx.Commit()
}

func insertTransaction(dbTx *sql.Tx, tx *domain.Transaction) error {
	return dbTx.QueryRow(`
		INSERT INTO loyalty_transactions (customer_id, type, points, order_id, description)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		RETURNING id, created_at`,
		tx.CustomerID, tx.Type, tx.Points, tx.OrderID, tx.Description,
	).Scan(&tx.ID, &tx.CreatedAt)
}

func (r *PostgresRepository) ListTransactions(customerID string) ([]domain.Transaction, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer_id, type, points, COALESCE(order_id, ''), COALESCE(description, ''), created_at
		FROM loyalty_transactions
		WHERE customer_id = $1
		ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.CustomerID, &tx.Type, &tx.Points, &tx.OrderID, &tx.Description, &tx.CreatedAt); err != nil {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
