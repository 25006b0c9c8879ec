package dto

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// CreatePostRequest 定义了创建文章的请求数据结构
// - 添加了 binding 标签用于输入验证
// - 注意: 作者身份永远来自认证上下文，请求体中不存在 author 相关字段，
//   即便传入也会在绑定阶段被丢弃
type CreatePostRequest struct {
	Title        string            `json:"title" binding:"required,max=255"`                           // 标题，必填，最大255字符
	Content      string            `json:"content" binding:"required"`                                 // 正文（预渲染标记文本），必填
	Slug         *string           `json:"slug" binding:"omitempty,max=255"`                           // Slug，可选；缺省时由标题派生
	Excerpt      *string           `json:"excerpt" binding:"omitempty,max=500"`                        // 摘要，可选
	ThumbnailURL *string           `json:"thumbnail_url" binding:"omitempty,url|uri"`                  // 缩略图 URL，可选
	Category     *string           `json:"category" binding:"omitempty,max=100"`                       // 分类，可选，默认 general
	Tags         []string          `json:"tags" binding:"omitempty,dive,max=50"`                       // 标签，可选
	Status       *enums.PostStatus `json:"status" binding:"omitempty,oneof=draft published scheduled"` // 状态，可选，默认 draft
	ScheduledAt  *time.Time        `json:"scheduled_at"`                                               // 定时发布时间，仅 status=scheduled 时有意义
}

// UpdatePostRequest 定义了更新文章的补丁数据结构
// - 所有字段均为指针：nil 表示“本次不更新该字段”，这是仓库层 map 式局部更新的输入约定
// - 不包含 slug：slug 创建后不可变，避免破坏已发布的外链
// - 不包含 author 字段：所有权不可转移
type UpdatePostRequest struct {
	Title        *string           `json:"title" binding:"omitempty,max=255"`
	Content      *string           `json:"content"`
	Excerpt      *string           `json:"excerpt" binding:"omitempty,max=500"`
	ThumbnailURL *string           `json:"thumbnail_url" binding:"omitempty,url|uri"`
	Category     *string           `json:"category" binding:"omitempty,max=100"`
	Tags         *[]string         `json:"tags" binding:"omitempty,dive,max=50"`
	Status       *enums.PostStatus `json:"status" binding:"omitempty,oneof=draft published scheduled"`
	ScheduledAt  *time.Time        `json:"scheduled_at"`

	// PublishedAt 显式指定发布时间。缺省时遵循生命周期棘轮规则：
	// 补丁将状态置为 published 且未携带该字段时，由服务端落章当前时间；
	// 其余情况下缺省表示保持原值不变。
	PublishedAt *time.Time `json:"published_at"`
}
