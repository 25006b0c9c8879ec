package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// ScheduledPublishTask 负责定时扫描到期的定时发布文章并提升为 published。
// 状态提升和发布时间落章在仓库层的单条 UPDATE 中原子完成，
// 任务本身无状态，多实例部署下重复执行也只是空命中。
type ScheduledPublishTask struct {
	postRepo mysql.BlogPostRepository // MySQL 仓库，用于批量发布到期文章
	cron     *cron.Cron               // cron V3 实例
	logger   *core.ZapLogger
}

// NewScheduledPublishTask 初始化并启动定时发布的定时任务。
func NewScheduledPublishTask(
	cfg *appConfig.SchedulerConfig,
	postRepo mysql.BlogPostRepository,
	logger *core.ZapLogger,
) *ScheduledPublishTask {
	cronV3 := cron.New() // 默认分钟级精度
	task := &ScheduledPublishTask{
		postRepo: postRepo,
		cron:     cronV3,
		logger:   logger,
	}
	task.startCronJob(cfg.ScheduledPublishCron)
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *ScheduledPublishTask) startCronJob(schedule string) {
	if schedule == "" {
		schedule = appConfig.DefaultScheduledPublishCron
	}
	t.logger.Info("准备启动定时发布扫描任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		// 单次扫描是一条 UPDATE，1 分钟超时绰绰有余。
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.publishDuePosts(ctx, startTime)
	})

	if err != nil {
		// 添加 cron 作业失败通常是 schedule 表达式错误，属于配置问题，直接终止。
		t.logger.Fatal("添加定时发布 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start() // 启动 cron 调度器 (在后台 goroutine 中运行)
	t.logger.Info("定时发布扫描任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// publishDuePosts 执行单次到期扫描。
func (t *ScheduledPublishTask) publishDuePosts(ctx context.Context, now time.Time) {
	affected, err := t.postRepo.PublishDueScheduled(ctx, now)
	if err != nil {
		t.logger.Error("批量发布到期定时文章失败，等待下一轮重试", zap.Error(err))
		return
	}
	if affected > 0 {
		t.logger.Info("到期定时文章已发布",
			zap.Int64("count", affected),
			zap.Duration("duration", time.Since(now)),
		)
	}
}

// Stop 优雅地停止 cron 调度器。
// 返回一个 context，调用者可以使用它来等待正在运行的任务完成。
func (t *ScheduledPublishTask) Stop() context.Context {
	t.logger.Info("正在停止定时发布扫描任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("定时发布扫描任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
