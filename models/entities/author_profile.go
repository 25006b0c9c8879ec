package entities

import (
	"database/sql"
	"time"
)

// AuthorProfile 作者资料实体
// - 使用场景: 为文章读取路径提供展示名的冗余关系（authors 联表）
// - 数据来源: 用户服务，通过 Kafka 资料变更事件异步同步
// - 表名: author_profiles
type AuthorProfile struct {
	// 用户ID，主键，与 blog_posts.author_id 对应
	UserID string `gorm:"type:char(36);primaryKey"`

	// 展示名，可为 NULL（用户尚未设置）
	DisplayName sql.NullString `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名。
func (AuthorProfile) TableName() string {
	return "author_profiles"
}
