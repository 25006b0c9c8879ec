package constant

// COS 对象键相关常量
const (
	// COSObjectKeyPrefixThumbnails 是文章缩略图在对象存储中的键前缀。
	// 完整键格式: blog/thumbnails/{slug或占位符}/{毫秒时间戳}.{扩展名}
	// 冲突通过时间戳命名避免，不做内容寻址。
	COSObjectKeyPrefixThumbnails = "blog/thumbnails/"

	// COSThumbnailScopePlaceholder 是文章尚未持有 slug（例如新建草稿还没保存）时，
	// 缩略图对象键使用的占位作用域。
	COSThumbnailScopePlaceholder = "temp"
)
