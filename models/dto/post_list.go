package dto

// ListPublishedPostsRequest 定义公开文章列表的查询参数
// - 添加了 form 标签用于 query 参数绑定
type ListPublishedPostsRequest struct {
	// Search 可选的搜索关键词。
	// 非空时对标题、正文、摘要做大小写不敏感的子串匹配（三者任一命中即返回，OR 语义）。
	Search string `json:"search" form:"search" binding:"omitempty,max=255"`

	// Category 可选的分类过滤，精确匹配。
	// 空值或哨兵值 "all" 表示不过滤。
	Category string `json:"category" form:"category" binding:"omitempty,max=100"`
}

// CategoryAll 是“不过滤分类”的哨兵值，与外部展示层的约定保持一致。
const CategoryAll = "all"
