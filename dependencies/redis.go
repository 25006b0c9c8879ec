package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
)

// InitRedis 初始化 Redis 客户端并做一次连通性检查。
// - Redis 在本服务中只承担已发布文章的读缓存，连接失败视为致命错误，
//   由 main 决定是否中止启动。
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("redis 配置不完整，缺少 address")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis Ping 失败", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("无法连接到 Redis (%s): %w", cfg.Address, err)
	}

	logger.Info("Redis 客户端初始化成功", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
