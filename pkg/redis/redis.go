package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/StefanoMT20/daw2/config"
)

// Client envoltorio del cliente Redis.
// Se usa para la lista negra de tokens al cerrar sesión.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient crea la conexión Redis y verifica con Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}

	logger.Info("conexión a Redis establecida", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Lista negra de tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken agrega el JTI a la lista negra con TTL igual al
// tiempo de vida restante del token
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // el token ya expiró
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted indica si el JTI está en la lista negra
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close cierra la conexión
func (c *Client) Close() error {
	return c.rdb.Close()
}
