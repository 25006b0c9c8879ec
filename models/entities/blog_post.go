package entities

import (
	"database/sql"
	"time"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// BlogPost 博客文章实体
// - 使用场景: 博客内容管理的唯一核心实体，同时服务公开阅读页与作者后台
// - 表名: blog_posts
// - 注意: 删除为硬删除（无软删除、无墓碑），因此不嵌入带 DeletedAt 的 BaseModel
type BlogPost struct {
	// 文章ID，创建时由服务端生成的 UUID，不可变
	// - 类型: char(36)
	ID string `gorm:"type:char(36);primaryKey"`

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null"`

	// Slug，URL 安全标识，默认由标题派生（见 slugify 包）
	// - 全局唯一，与状态无关（数据库唯一索引兜底）
	// - 创建后不可变更：标题编辑不会重新派生 slug，避免破坏已发布的外链
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex:uk_blog_posts_slug"`

	// 摘要，可选的简短总结
	// - 类型: sql.NullString，区分“未填写”和空字符串
	Excerpt sql.NullString `gorm:"type:varchar(500)"`

	// 正文，预渲染的标记文本，本服务视为不透明字符串，不解析其结构
	Content string `gorm:"type:longtext;not null"`

	// 缩略图 URL，指向对象存储中的公开对象，本服务视为不透明字符串
	ThumbnailURL sql.NullString `gorm:"type:varchar(512)"`

	// 作者ID，创建时由认证身份写入，之后永不变更
	// - 类型: char(36)，与用户服务的用户ID格式一致
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 分类，自由文本，默认 "general"
	Category string `gorm:"type:varchar(100);not null;default:general"`

	// 标签，有序字符串序列，可为空
	// - 存储为 JSON 列，读写通过 GORM 的 json 序列化器完成
	Tags []string `gorm:"type:json;serializer:json"`

	// 状态，draft / published / scheduled
	// - 公开读取路径只暴露 published
	Status enums.PostStatus `gorm:"type:varchar(20);not null;default:draft;index"`

	// 定时发布时间，仅在 status = scheduled 时有意义
	ScheduledAt *time.Time

	// 发布时间，首次进入 published 状态时落章，单向棘轮：
	// 离开 published 不清除，除非调用方在补丁中显式覆盖
	PublishedAt *time.Time `gorm:"index"`

	// 创建/更新时间，GORM 自动维护
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名，与原系统的 blog_posts 关系保持一致。
func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogPostWithAuthor 读取路径的联表结果
// - 在 BlogPost 之上附加作者资料表冗余出的展示名
// - 仅在读取时填充，写入路径不接受该字段
type BlogPostWithAuthor struct {
	BlogPost `gorm:"embedded"`

	// 作者展示名，LEFT JOIN author_profiles 的结果，可能为 NULL（作者未建资料）
	AuthorDisplayName sql.NullString `gorm:"column:author_display_name"`
}
