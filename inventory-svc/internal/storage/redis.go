package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDebitMarker remembers which referenced debits already produced a
// ledger entry. A retried fulfillment finds the marker and gets the
// original movement back instead of draining stock twice.
type RedisDebitMarker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDebitMarker(client *redis.Client) *RedisDebitMarker {
	return &RedisDebitMarker{client: client, ttl: 24 * time.Hour}
}

func (m *RedisDebitMarker) Key(referenceID string, ingredientID int) string {
	return fmt.Sprintf("debit:%s:%d", referenceID, ingredientID)
}

func (m *RedisDebitMarker) Get(ctx context.Context, key string) (int, bool, error) {
	val, err := m.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	movementID, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt debit marker %s: %w", key, err)
	}
	return movementID, true, nil
}

func (m *RedisDebitMarker) Set(ctx context.Context, key string, movementID int) error {
	return m.client.Set(ctx, key, strconv.Itoa(movementID), m.ttl).Err()
}
