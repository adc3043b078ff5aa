package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/dto"
	"github.com/jmakori/safari-quote-service/internal/i18n"
)

// defaultNumShards spreads client buckets over enough locks that concurrent
// quote requests rarely contend.
const defaultNumShards = 16

// clientBucket is the remaining quota for one client IP in the current window.
type clientBucket struct {
	tokens    int
	windowTop time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
}

// ShardedRateLimiter enforces a fixed-window per-IP request quota, sharded
// by FNV hash of the client identifier.
type ShardedRateLimiter struct {
	shards    []*limiterShard
	numShards int
	rate      int
	window    time.Duration
	stopCh    chan struct{}
}

// RateLimiter is an alias kept for callers that predate sharding.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter creates a limiter with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter allowing rate requests per window
// per client. A background goroutine evicts idle clients until Stop is called.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*limiterShard, numShards)
	for i := range shards {
		shards[i] = &limiterShard{clients: make(map[string]*clientBucket)}
	}

	rl := &ShardedRateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		stopCh:    make(chan struct{}),
	}

	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(identifier string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

// take consumes one token for the identifier, reporting whether the request
// may proceed and how many tokens remain in the window.
func (rl *ShardedRateLimiter) take(identifier string) (allowed bool, remaining int) {
	shard := rl.shardFor(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	bucket, ok := shard.clients[identifier]
	if !ok || now.Sub(bucket.windowTop) > rl.window {
		shard.clients[identifier] = &clientBucket{tokens: rl.rate - 1, windowTop: now}
		return true, rl.rate - 1
	}

	if bucket.tokens <= 0 {
		return false, 0
	}
	bucket.tokens--
	return true, bucket.tokens
}

// RateLimit returns the gin middleware enforcing the per-IP quota.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.take(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			locale := i18n.GetLocale(c)
			c.Header("Retry-After", rl.window.String())
			errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle drops clients that have been quiet for two full windows.
func (rl *ShardedRateLimiter) evictIdle() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, bucket := range shard.clients {
			if now.Sub(bucket.windowTop) > threshold {
				delete(shard.clients, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop terminates the eviction goroutine.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats reports tracked client counts, total and per shard.
func (rl *ShardedRateLimiter) Stats() (totalClients int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.clients)
		totalClients += perShard[i]
		shard.mu.Unlock()
	}
	return totalClients, perShard
}
