package config

// SourceConfig 代表一个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// 独立连接池设置，使用指针以区分“未设置”与显式 0，未设置时回落到共享设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 包含主库和从库的配置
// - Read 列表为空时不启用读写分离
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`

	// 共享/默认连接池设置（Write/Read 未单独指定时生效）
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
