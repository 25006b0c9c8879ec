// Package events 定义了本服务在 Kafka 上收发的事件结构。
// - 出站: 文章发布、文章删除（供搜索索引、邮件订阅等下游消费）
// - 入站: 用户服务的作者资料变更（用于同步 author_profiles 冗余表）
package events

import "time"

// PostEventData 事件中携带的文章核心数据。
// - 时间戳统一使用毫秒时间戳，与下游服务的约定保持一致。
type PostEventData struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt,omitempty"`
	AuthorID    string   `json:"author_id"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt int64    `json:"published_at"` // 毫秒时间戳
	UpdatedAt   int64    `json:"updated_at"`   // 毫秒时间戳
}

// PostPublishedEvent 文章进入 published 状态时发出。
type PostPublishedEvent struct {
	EventID   string        `json:"event_id"`  // 事件唯一ID (UUID)
	Timestamp time.Time     `json:"timestamp"` // 事件产生时间
	Post      PostEventData `json:"post"`
}

// PostDeletedEvent 文章被删除时发出。
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    string    `json:"post_id"`
	Slug      string    `json:"slug"`
}

// AuthorProfileUpdatedEvent 用户服务发出的作者资料变更事件。
// - 本服务消费后更新 author_profiles 表，保证读取路径联表出的展示名最终一致。
type AuthorProfileUpdatedEvent struct {
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
}
