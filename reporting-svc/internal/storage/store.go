package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"anugerah-resto/reporting-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func dailyKey(day string) string {
	return "sales:daily:" + day
}

const customersKey = "customers:alltime"

// RecordSale counts a completed order into the daily rollup. Postgres is
// the system of record; the Redis hash is a cache for the dashboard.
func (s *Store) RecordSale(day string, total float64, customerID string) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_sales (day, orders, cancelled, revenue)
		VALUES ($1, 1, 0, $2)
		ON CONFLICT (day) DO UPDATE
		SET orders = daily_sales.orders + 1,
			revenue = daily_sales.revenue + $2
	`, day, total)
	if err != nil {
		return err
	}

	key := dailyKey(day)
	s.rdb.HIncrBy(s.ctx, key, "orders", 1)
	s.rdb.HIncrByFloat(s.ctx, key, "revenue", total)
	s.rdb.Expire(s.ctx, key, 35*24*time.Hour)

	if customerID != "" {
		s.rdb.ZIncrBy(s.ctx, customersKey, total, customerID)
	}
	return nil
}

func (s *Store) RecordCancellation(day string) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_sales (day, orders, cancelled, revenue)
		VALUES ($1, 0, 1, 0)
		ON CONFLICT (day) DO UPDATE
		SET cancelled = daily_sales.cancelled + 1
	`, day)
	if err != nil {
		return err
	}

	key := dailyKey(day)
	s.rdb.HIncrBy(s.ctx, key, "cancelled", 1)
	s.rdb.Expire(s.ctx, key, 35*24*time.Hour)
	return nil
}

// DailySales reads the rollup for one day, falling back to Postgres when
// the Redis cache has expired.
func (s *Store) DailySales(day string) (*domain.DailySales, error) {
	fields, err := s.rdb.HGetAll(s.ctx, dailyKey(day)).Result()
	if err == nil && len(fields) > 0 {
		sales := &domain.DailySales{Day: day}
		fmt.Sscan(fields["orders"], &sales.Orders)
		fmt.Sscan(fields["cancelled"], &sales.Cancelled)
		fmt.Sscan(fields["revenue"], &sales.Revenue)
		return sales, nil
	}

	sales := &domain.DailySales{Day: day}
	err = s.db.QueryRow(`
		SELECT orders, cancelled, revenue
		FROM daily_sales
		WHERE day = $1
	`, day).Scan(&sales.Orders, &sales.Cancelled, &sales.Revenue)
	if errors.Is(err, sql.ErrNoRows) {
		return sales, nil
	}
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *Store) TopCustomers(limit int) ([]domain.CustomerSpend, error) {
	if limit <= 0 {
		limit = 10
	}
	result, err := s.rdb.ZRevRangeWithScores(s.ctx, customersKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	customers := []domain.CustomerSpend{}
	for _, member := range result {
		customerID, ok := member.Member.(string)
		if !ok {
			continue
		}
		customers = append(customers, domain.CustomerSpend{
			CustomerID: customerID,
			Total:      member.Score,
		})
	}
	return customers, nil
}
