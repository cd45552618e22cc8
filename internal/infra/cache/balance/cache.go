// Package balance кэширует проекцию баланса баллов в Redis
//
// Кэш - всего лишь проекция: источником истины остается свертка журнала
// транзакций. Каждый append инвалидирует запись, поэтому устаревший баланс
// живет не дольше одной записи в журнал (плюс TTL как страховка).
package balance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss возвращается, когда баланса нет в кэше
var ErrCacheMiss = errors.New("balance.cache: cache miss")

// Cache кэш балансов поверх Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый кэш балансов
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(userID int64) string {
	return fmt.Sprintf("points:balance:%d", userID)
}

// Get читает закэшированный баланс пользователя
func (c *Cache) Get(ctx context.Context, userID int64) (int64, error) {
	val, err := c.client.Get(ctx, key(userID)).Result()
	if err == redis.Nil {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, fmt.Errorf("balance.cache: get: %w", err)
	}

	balance, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// Поврежденное значение трактуем как промах
		return 0, ErrCacheMiss
	}

	return balance, nil
}

// Set сохраняет баланс пользователя с TTL
func (c *Cache) Set(ctx context.Context, userID int64, balance int64) error {
	if err := c.client.Set(ctx, key(userID), strconv.FormatInt(balance, 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("balance.cache: set: %w", err)
	}
	return nil
}

// Invalidate сбрасывает закэшированный баланс пользователя
// Вызывается после каждого append в журнал
func (c *Cache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("balance.cache: invalidate: %w", err)
	}
	return nil
}
