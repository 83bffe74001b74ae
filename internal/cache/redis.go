package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Totarae/ShortLinks/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss — в кеше нет записи для запрошенного кода.
var ErrCacheMiss = errors.New("cache miss")

// Cache — кеш резолва коротких кодов поверх Redis. Промах кеша не ошибка
// уровня сервиса: сервис при промахе идёт в основное хранилище.
type Cache struct {
	rdb *redis.Client
}

// ConnectRedis подключается к Redis и проверяет соединение.
func ConnectRedis(addr, password string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{rdb: rdb}, nil
}

// GetLink возвращает закешированную ссылку по короткому коду.
func (c *Cache) GetLink(ctx context.Context, shortCode string) (*model.CachedLink, error) {
	raw, err := c.rdb.Get(ctx, shortCode).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	entry := &model.CachedLink{}
	if err := json.Unmarshal([]byte(raw), entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetLink кладёт ссылку в кеш на время ttl.
func (c *Cache) SetLink(ctx context.Context, shortCode string, entry *model.CachedLink, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, shortCode, raw, ttl).Err()
}

// DeleteLink инвалидирует запись кеша после обновления или удаления ссылки.
func (c *Cache) DeleteLink(ctx context.Context, shortCode string) error {
	return c.rdb.Del(ctx, shortCode).Err()
}

// Close закрывает подключение к Redis.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
