// Package ratelimit — ограничение частоты отправки сообщений: скользящее окно в Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Limit  int
	Window time.Duration
}

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Noop пропускает всё; используется, когда Redis не настроен.
type Noop struct{}

func (Noop) Allow(context.Context, string) (Result, error) {
	return Result{Allowed: true, Remaining: -1}, nil
}

// KEYS[1]: zset отметок, KEYS[2]: счётчик для уникальных member.
var slidingWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local counter_key = KEYS[2]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
	local count = redis.call('ZCARD', key)

	if count < limit then
		local counter = redis.call('INCR', counter_key)
		redis.call('ZADD', key, now, now .. ':' .. counter)
		redis.call('PEXPIRE', key, window_ms)
		redis.call('PEXPIRE', counter_key, window_ms)
		return {1, limit - count - 1, 0}
	end

	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	local retry_after = 0
	if #oldest >= 2 then
		retry_after = tonumber(oldest[2]) + window_ms - now
	end
	return {0, 0, retry_after}
`)

type SlidingWindow struct {
	client redis.Scripter
	cfg    Config
	prefix string
	now    func() time.Time
}

func NewSlidingWindow(client redis.Scripter, cfg Config, prefix string) *SlidingWindow {
	return &SlidingWindow{client: client, cfg: cfg, prefix: prefix, now: time.Now}
}

// Allow учитывает одну попытку по ключу и говорит, укладывается ли она в окно.
func (l *SlidingWindow) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()
	windowMs := l.cfg.Window.Milliseconds()
	redisKey := l.prefix + key

	raw, err := slidingWindowScript.Run(ctx, l.client,
		[]string{redisKey, redisKey + ":counter"},
		now.UnixMilli(),
		now.Add(-l.cfg.Window).UnixMilli(),
		l.cfg.Limit,
		windowMs,
	).Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit script: %w", err)
	}
	if len(raw) < 3 {
		return Result{}, fmt.Errorf("ratelimit: unexpected result length %d", len(raw))
	}

	vals := make([]int64, 3)
	for i := range vals {
		v, err := toInt64(raw[i])
		if err != nil {
			return Result{}, fmt.Errorf("ratelimit: result[%d]: %w", i, err)
		}
		vals[i] = v
	}

	res := Result{
		Allowed:   vals[0] == 1,
		Remaining: int(vals[1]),
	}
	if !res.Allowed && vals[2] > 0 {
		res.RetryAfter = time.Duration(vals[2]) * time.Millisecond
	}
	return res, nil
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
