package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// BlogPostVO 定义了文章的响应数据结构
// - 公开读取路径与作者后台共用；可空字段用指针表示，便于前端区分“未设置”
type BlogPostVO struct {
	ID                string           `json:"id"`                  // 文章ID
	Title             string           `json:"title"`               // 标题
	Slug              string           `json:"slug"`                // URL 安全标识
	Excerpt           *string          `json:"excerpt"`             // 摘要，可能为空
	Content           string           `json:"content"`             // 正文（预渲染标记文本）
	ThumbnailURL      *string          `json:"thumbnail_url"`       // 缩略图 URL，可能为空
	AuthorID          string           `json:"author_id"`           // 作者ID
	AuthorDisplayName *string          `json:"author_display_name"` // 作者展示名，读取时联表附加，可能为空
	Category          string           `json:"category"`            // 分类
	Tags              []string         `json:"tags"`                // 标签
	Status            enums.PostStatus `json:"status"`              // 状态 draft/published/scheduled
	ScheduledAt       *time.Time       `json:"scheduled_at"`        // 定时发布时间
	PublishedAt       *time.Time       `json:"published_at"`        // 发布时间（首次发布时落章）
	CreatedAt         time.Time        `json:"created_at"`          // 创建时间
	UpdatedAt         time.Time        `json:"updated_at"`          // 更新时间
}

// PostListVO 定义了文章列表的响应结构。
type PostListVO struct {
	Posts []*BlogPostVO `json:"posts"` // 文章列表
	Total int           `json:"total"` // 本次返回的数量
}

// UploadThumbnailVO 定义了缩略图上传成功后的响应结构。
type UploadThumbnailVO struct {
	URL string `json:"url"` // 对象的公开访问 URL
}

// NewBlogPostVO 将联表读取结果转换为响应 VO。
func NewBlogPostVO(row *entities.BlogPostWithAuthor) *BlogPostVO {
	if row == nil {
		return nil
	}

	v := &BlogPostVO{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Content:     row.Content,
		AuthorID:    row.AuthorID,
		Category:    row.Category,
		Tags:        row.Tags,
		Status:      row.Status,
		ScheduledAt: row.ScheduledAt,
		PublishedAt: row.PublishedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Excerpt.Valid {
		excerpt := row.Excerpt.String
		v.Excerpt = &excerpt
	}
	if row.ThumbnailURL.Valid {
		thumbnail := row.ThumbnailURL.String
		v.ThumbnailURL = &thumbnail
	}
	if row.AuthorDisplayName.Valid {
		displayName := row.AuthorDisplayName.String
		v.AuthorDisplayName = &displayName
	}
	return v
}

// NewBlogPostVOs 批量转换，保持仓库层返回的排序。
// 返回空切片而不是 nil，便于前端处理。
func NewBlogPostVOs(rows []*entities.BlogPostWithAuthor) []*BlogPostVO {
	result := make([]*BlogPostVO, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		result = append(result, NewBlogPostVO(row))
	}
	return result
}
