package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter limitador de ventana fija sobre Redis. Un limiter nil permite todo,
// así las rutas funcionan igual cuando Redis no está configurado.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

// NewRedisLimiter construye el limitador. Con client nil devuelve nil (desactivado).
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

// Allow indica si la petición con la clave dada entra dentro del límite.
// Ante cualquier error de Redis se permite la petición (fail-open).
func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}

// RateLimit middleware que limita por IP las rutas públicas de escritura
// (postulaciones y reseñas).
func RateLimit(limiter *RedisLimiter, name string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "ratelimit:" + name + ":" + c.IP()
		if !limiter.Allow(key, limit, window) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones, intenta más tarde"})
		}
		return c.Next()
	}
}
