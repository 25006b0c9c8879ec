package config

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 无密码时留空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用客户端默认值
}

// CacheConfig 文章读取缓存相关配置
type CacheConfig struct {
	// PostBySlugTTLSeconds 是按 slug 缓存已发布文章的过期秒数。
	// 写路径会主动删除对应 Key，TTL 只是兜底，防止删除失败后的长期脏读。
	PostBySlugTTLSeconds int `mapstructure:"postBySlugTTLSeconds" json:"postBySlugTTLSeconds" yaml:"postBySlugTTLSeconds"`
}
