package enums

// PostStatus 表示博客文章的生命周期状态。
// - 以字符串形式持久化 (varchar)，与外部展示层约定的取值保持一致。
// - 状态机: draft -> scheduled -> published；draft -> published。
//   离开 published 状态不会清除 published_at（见 lifecycle 包的棘轮规则）。
type PostStatus string

const (
	// PostStatusDraft 草稿，仅作者本人可见。
	PostStatusDraft PostStatus = "draft"

	// PostStatusPublished 已发布，公开读取路径仅返回该状态的文章。
	PostStatusPublished PostStatus = "published"

	// PostStatusScheduled 定时发布，scheduled_at 到期后由定时任务提升为 published。
	PostStatusScheduled PostStatus = "scheduled"
)

// IsValid 校验状态取值是否合法。
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled:
		return true
	}
	return false
}

// String 实现 fmt.Stringer，便于日志输出。
func (s PostStatus) String() string {
	return string(s)
}
