// Package lifecycle 实现文章写入前的校验与状态派生规则。
// 纯逻辑、无 I/O；服务层在每次创建/更新落库前调用这里的规则。
package lifecycle

import (
	"strings"
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// DefaultCategory 是未指定分类时的默认值。
const DefaultCategory = "general"

// ValidateTitle 校验标题非空（纯空白视为空）。
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return myErrors.ErrTitleRequired
	}
	return nil
}

// ApplyCreateDefaults 在创建路径上校验并补全实体：
//   - 标题必须非空；
//   - slug 必须非空（全标点标题会派生出空 slug，在这里拦截）；
//   - 状态缺省为 draft，非法取值直接拒绝；
//   - 分类缺省为 DefaultCategory；
//   - 状态为 published 且尚无 published_at 时，以 now 落章发布时间。
//
// 调用后实体即为可落库的完整形态。
func ApplyCreateDefaults(post *entities.BlogPost, now time.Time) error {
	if err := ValidateTitle(post.Title); err != nil {
		return err
	}
	if post.Slug == "" {
		return myErrors.ErrSlugEmpty
	}
	if post.Status == "" {
		post.Status = enums.PostStatusDraft
	}
	if !post.Status.IsValid() {
		return myErrors.ErrInvalidStatus
	}
	if post.Category == "" {
		post.Category = DefaultCategory
	}
	if post.Status == enums.PostStatusPublished && post.PublishedAt == nil {
		publishedAt := now
		post.PublishedAt = &publishedAt
	}
	return nil
}

// StampPublishedAt 在更新路径上执行发布时间的单向棘轮：
// 补丁把状态置为 published 且没有显式携带 published_at 时，以 now 落章。
// 状态离开 published 不触碰 published_at——“曾于 T 时刻发布”的历史被保留，
// 除非调用方显式提供新值（由服务层直接写入 updates）。
func StampPublishedAt(updates map[string]interface{}, status *enums.PostStatus, explicitPublishedAt *time.Time, now time.Time) {
	if status == nil || *status != enums.PostStatusPublished {
		return
	}
	if explicitPublishedAt != nil {
		return
	}
	updates["published_at"] = now
}
