package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"traini8/config"
)

// Client Redis 客户端封装
// 用于培训中心列表缓存与创建接口限流
type Client struct {
	rdb    goredis.UniversalClient
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// Wrap 用已有连接构造 Client（测试中传入 redismock 客户端）
func Wrap(rdb goredis.UniversalClient, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── 列表缓存 ──
//
// 每个筛选条件一个 key：training_centers:list:<version>:<query>（无筛选时 query 为 "*"），
// 各自带 TTL。新建培训中心时递增 version，旧版本的 key 不再被读取，自然过期。
// 查库前先取 version，查库期间发生的创建会让这次写入落在旧版本下。

const (
	listVersionKey = "training_centers:list:version"
	listKeyPrefix  = "training_centers:list:"
)

func listKey(version int64, query string) string {
	if query == "" {
		query = "*"
	}
	return fmt.Sprintf("%s%d:%s", listKeyPrefix, version, query)
}

// ListVersion 当前列表缓存版本，从未失效过时为 0
func (c *Client) ListVersion(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, listVersionKey).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return v, err
}

// GetList 读取指定版本下缓存的列表 JSON，未命中返回 (nil, false, nil)
func (c *Client) GetList(ctx context.Context, version int64, query string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, listKey(version, query)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// SetList 写入列表缓存；ttl <= 0 时不缓存
func (c *Client) SetList(ctx context.Context, version int64, query string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, listKey(version, query), payload, ttl).Err()
}

// InvalidateList 递增版本，使全部已缓存列表失效
func (c *Client) InvalidateList(ctx context.Context) error {
	return c.rdb.Incr(ctx, listVersionKey).Err()
}

// ── 限流 ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit 固定窗口计数：窗口内第 limit+1 次起返回 false。
// SET NX EX 与 INCR 在同一事务中执行，计数 key 创建时即带过期时间。
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	k := rateLimitPrefix + key

	var incr *goredis.IntCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, window)
		incr = pipe.Incr(ctx, k)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
