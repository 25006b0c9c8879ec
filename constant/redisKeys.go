package constant

// Redis Key 相关常量 (导出)
const (
	// PostBySlugCachePrefix 是公开阅读路径按 slug 缓存文章的 Key 前缀。
	// 仅缓存 status = published 的文章；任何针对该文章的写操作都会删除对应 Key。
	// 示例 Key: "blog_post_slug:hello-world-2024"
	// Redis 类型: String (存储 vo.BlogPostVO 的 JSON 序列化结果)
	PostBySlugCachePrefix = "blog_post_slug:"
)
