package config

// DefaultScheduledPublishCron 是定时发布任务的默认调度表达式。
const DefaultScheduledPublishCron = "@every 1m"

// SchedulerConfig 定时任务相关配置
type SchedulerConfig struct {
	// ScheduledPublishCron 是定时发布任务的 cron 表达式（robfig/cron v3 语法）。
	// 任务把 scheduled_at 已到期的 scheduled 文章提升为 published。
	// 留空时使用 "@every 1m"。
	ScheduledPublishCron string `mapstructure:"scheduledPublishCron" json:"scheduledPublishCron" yaml:"scheduledPublishCron"`
}
