package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/go-blogger-platform/internal/config"
)

// RedisLimiter — реализация Limiter поверх Redis для запуска сервиса
// в несколько реплик: счётчик окна общий для всех инстансов.
//
// Окно хранится как sorted set со score — наносекундным таймстемпом
// запроса. Продрезание окна, счёт и условный ZADD выполняются одним
// Lua-скриптом: два конкурентных запроса на один ключ не могут оба
// увидеть свободный бюджет.
type RedisLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRedisLimiter создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "auth:rl:".
func NewRedisLimiter(redisURL, prefix string, cfg config.RateLimitConfig) (*RedisLimiter, error) {
	if prefix == "" {
		prefix = "auth:rl:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisLimiter{
		rdb:    rdb,
		prefix: prefix,
		limit:  cfg.Limit,
		window: cfg.Window,
	}, nil
}

func (l *RedisLimiter) key(ip, route string) string { return l.prefix + ip + "|" + route }

// allowScript атомарно продрезает окно, считает оставшиеся записи и,
// если бюджет не исчерпан, регистрирует запрос. KEYS[1] — ключ окна,
// ARGV: край окна (наносекунды, включительно), лимит, score запроса,
// уникальный member, TTL ключа в миллисекундах.
var allowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[2]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// Allow регистрирует запрос и проверяет бюджет окна.
func (l *RedisLimiter) Allow(ctx context.Context, ip, route string) (bool, error) {
	key := l.key(ip, route)
	now := time.Now()
	edge := now.Add(-l.window).UnixNano()

	// member уникален на уровне реплики и момента: совпадение
	// наносекунд у разных инстансов не схлопывает две записи в одну.
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()

	res, err := allowScript.Run(ctx, l.rdb, []string{key},
		edge,
		l.limit,
		now.UnixNano(),
		member,
		l.window.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}

	return res == 1, nil
}

// Close закрывает клиент Redis.
func (l *RedisLimiter) Close() error { return l.rdb.Close() }

var _ Limiter = (*RedisLimiter)(nil)
