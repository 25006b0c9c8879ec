package config

import "github.com/Xushengqwer/go-common/config"

// BlogConfig 是本服务的聚合配置，由 go-common 的 LoadConfig 从 yaml + 环境变量装载。
type BlogConfig struct {
	ZapConfig       config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig   config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig    config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig    config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig     MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig     RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	CacheConfig     CacheConfig          `mapstructure:"cacheConfig" json:"cacheConfig" yaml:"cacheConfig"`
	KafkaConfig     KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	SchedulerConfig SchedulerConfig      `mapstructure:"schedulerConfig" json:"schedulerConfig" yaml:"schedulerConfig"`
	COSConfig       COSConfig            `mapstructure:"blogThumbnailsCosConfig" json:"blogThumbnailsCosConfig" yaml:"blogThumbnailsCosConfig"`
}
