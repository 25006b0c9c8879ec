package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// PostCache 定义了公开读取路径的文章缓存接口。
// - 目标: 为按 slug 的单篇读取提供旁路缓存，减轻数据库压力。
// - 只缓存 status = published 的文章；写路径负责删除对应 Key。
// - 缓存层的任何故障都不应令读取失败：上层在缓存出错时直接回源数据库。
type PostCache interface {
	// GetBySlug 按 slug 获取缓存的文章 VO。
	// - 未命中时返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetBySlug(ctx context.Context, slug string) (*vo.BlogPostVO, error)

	// SetBySlug 写入缓存，TTL 由构造时的配置决定。
	SetBySlug(ctx context.Context, post *vo.BlogPostVO) error

	// InvalidateBySlug 删除指定 slug 的缓存。
	// - Key 不存在不是错误（删除幂等）。
	InvalidateBySlug(ctx context.Context, slug string) error
}

// postCacheImpl 是 PostCache 接口的 Redis 实现。
type postCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	ttl         time.Duration
}

// NewPostCache 是 postCacheImpl 的构造函数。
func NewPostCache(redisClient *redis.Client, logger *core.ZapLogger, ttl time.Duration) PostCache {
	return &postCacheImpl{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

func cacheKey(slug string) string {
	return constant.PostBySlugCachePrefix + slug
}

// GetBySlug 实现按 slug 的缓存读取。
func (c *postCacheImpl) GetBySlug(ctx context.Context, slug string) (*vo.BlogPostVO, error) {
	key := cacheKey(slug)

	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取文章缓存失败", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("读取文章缓存 (key: %s) 失败: %w", key, err)
	}

	var post vo.BlogPostVO
	if err := json.Unmarshal(payload, &post); err != nil {
		// 缓存内容损坏：删除脏数据并按未命中处理，让上层回源重建。
		c.logger.Warn("文章缓存内容反序列化失败，已删除脏 Key",
			zap.Error(err),
			zap.String("key", key),
		)
		c.redisClient.Del(ctx, key)
		return nil, myErrors.ErrCacheMiss
	}

	c.logger.Debug("文章缓存命中", zap.String("slug", slug))
	return &post, nil
}

// SetBySlug 实现缓存写入。
func (c *postCacheImpl) SetBySlug(ctx context.Context, post *vo.BlogPostVO) error {
	if post == nil || post.Slug == "" {
		return nil
	}
	payload, err := json.Marshal(post)
	if err != nil {
		c.logger.Error("文章 VO 序列化失败，跳过缓存写入", zap.Error(err), zap.String("slug", post.Slug))
		return err
	}

	key := cacheKey(post.Slug)
	if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Error("写入文章缓存失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("写入文章缓存 (key: %s) 失败: %w", key, err)
	}
	return nil
}

// InvalidateBySlug 实现缓存删除。
func (c *postCacheImpl) InvalidateBySlug(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	key := cacheKey(slug)
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.logger.Error("删除文章缓存失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("删除文章缓存 (key: %s) 失败: %w", key, err)
	}
	return nil
}
