package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// BlogPostRepository 定义了文章数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
//
// 所有读取方法都会 LEFT JOIN author_profiles 附带作者展示名；
// 所有按作者约束的写入方法都依赖数据库在同一条语句里原子地评估
// id + author_id 谓词，本层不做先查后改的权限检查。
type BlogPostRepository interface {
	// CreatePost 持久化一篇新文章。
	// - slug 唯一索引冲突时返回 myErrors.ErrSlugConflict。
	CreatePost(ctx context.Context, post *entities.BlogPost) error

	// UpdatePost 对指定文章执行 map 式局部更新。
	// - 行级过滤要求 id 与 author_id 同时匹配；未命中（文章不存在或不属于
	//   该作者）统一返回 commonerrors.ErrRepoNotFound，不区分“无权限”，
	//   避免通过错误类型探测文章是否存在。
	UpdatePost(ctx context.Context, postID string, authorID string, updates map[string]interface{}) error

	// DeletePost 硬删除指定文章，同样以 id + author_id 过滤。
	// - 零行命中不是错误：与外部存储网关“忽略受影响行数”的删除语义保持
	//   兼容，调用方视角下删除是幂等的。
	DeletePost(ctx context.Context, postID string, authorID string) error

	// GetPublishedBySlug 按 slug 读取已发布文章（公开读取路径）。
	// - slug 命中但状态不是 published 时同样返回 ErrRepoNotFound，
	//   防止草稿/定时文章通过可猜测的 URL 泄露。
	// - 唯一性约束被破坏（命中多行）属于内部错误，记录日志后对调用方
	//   坍缩为 ErrRepoNotFound。
	GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPostWithAuthor, error)

	// GetByIDForAuthor 按 id 读取作者本人的文章（任意状态），用于写路径的回读。
	GetByIDForAuthor(ctx context.Context, postID string, authorID string) (*entities.BlogPostWithAuthor, error)

	// ListPublished 返回已发布文章列表，published_at 降序，
	// 平局按插入顺序（created_at 升序）稳定排序。
	// - search 非空时对标题/正文/摘要做大小写不敏感子串匹配（OR 语义）。
	// - category 非空且不是哨兵值 "all" 时按分类精确过滤。
	// - 空结果是合法结果，不是错误。
	ListPublished(ctx context.Context, search string, category string) ([]*entities.BlogPostWithAuthor, error)

	// ListByAuthor 返回指定作者的全部文章（任意状态），created_at 降序。
	ListByAuthor(ctx context.Context, authorID string) ([]*entities.BlogPostWithAuthor, error)

	// PublishDueScheduled 把 scheduled_at 已到期的 scheduled 文章批量提升为
	// published，返回受影响行数。published_at 使用 COALESCE 保持单向棘轮：
	// 已有发布时间的文章不会被覆盖。
	PublishDueScheduled(ctx context.Context, now time.Time) (int64, error)
}

// blogPostRepository 是 BlogPostRepository 接口针对 MySQL 的具体实现。
type blogPostRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewBlogPostRepository 是 blogPostRepository 的构造函数。
func NewBlogPostRepository(db *gorm.DB, logger *core.ZapLogger) BlogPostRepository {
	return &blogPostRepository{
		db:     db,
		logger: logger,
	}
}

// withAuthorJoin 构建附带作者展示名的基础读取查询。
func (r *blogPostRepository) withAuthorJoin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.BlogPost{}).
		Select("blog_posts.*, author_profiles.display_name AS author_display_name").
		Joins("LEFT JOIN author_profiles ON author_profiles.user_id = blog_posts.author_id")
}

// CreatePost 实现文章的数据库插入操作。
func (r *blogPostRepository) CreatePost(ctx context.Context, post *entities.BlogPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		// TranslateError 开启后，唯一索引冲突会以 gorm.ErrDuplicatedKey 暴露。
		// blog_posts 上唯一的唯一索引就是 slug，因此可以直接映射。
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn("创建文章 slug 冲突",
				zap.String("slug", post.Slug),
				zap.String("authorID", post.AuthorID),
			)
			return myErrors.ErrSlugConflict
		}
		r.logger.Error("创建文章数据库操作失败", zap.Error(err), zap.String("slug", post.Slug))
		return err
	}
	return nil
}

// UpdatePost 实现 map 式局部更新，行级过滤 id + author_id。
func (r *blogPostRepository) UpdatePost(ctx context.Context, postID string, authorID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新文章 (补丁为空)",
			zap.String("postID", postID),
		)
		return nil
	}

	// 总是更新 updated_at 字段
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.BlogPost{}).
		Where("id = ? AND author_id = ?", postID, authorID).
		Updates(updates)

	if result.Error != nil {
		r.logger.Error("更新文章数据库操作失败",
			zap.Error(result.Error),
			zap.String("postID", postID),
			zap.Any("updateData", updates),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		// 文章不存在，或存在但不属于该作者。两种情况对调用方不可区分。
		r.logger.Warn("尝试更新文章但未命中记录",
			zap.String("postID", postID),
			zap.String("authorID", authorID),
		)
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeletePost 实现文章的硬删除。
func (r *blogPostRepository) DeletePost(ctx context.Context, postID string, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", postID, authorID).
		Delete(&entities.BlogPost{})
	if result.Error != nil {
		r.logger.Error("删除文章数据库操作失败",
			zap.Error(result.Error),
			zap.String("postID", postID),
		)
		return result.Error
	}

	// 刻意不检查 RowsAffected：删除不存在/不属于该作者的文章静默成功，
	// 与外部存储网关的行为保持兼容（幂等删除语义）。
	if result.RowsAffected == 0 {
		r.logger.Info("删除文章未命中记录（幂等删除，视为成功）",
			zap.String("postID", postID),
			zap.String("authorID", authorID),
		)
	}
	return nil
}

// GetPublishedBySlug 实现公开读取路径的 slug 查询。
func (r *blogPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPostWithAuthor, error) {
	var rows []*entities.BlogPostWithAuthor

	// 取 2 条用于探测唯一性约束是否被破坏。
	err := r.withAuthorJoin(ctx).
		Where("blog_posts.slug = ? AND blog_posts.status = ?", slug, enums.PostStatusPublished).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("按 slug 查询文章失败", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, commonerrors.ErrRepoNotFound
	case 1:
		return rows[0], nil
	default:
		// 唯一索引理论上不允许出现这种情况；记录内部错误，对外坍缩为未找到。
		r.logger.Error("slug 唯一性不变量被破坏",
			zap.Error(myErrors.ErrMultipleResults),
			zap.String("slug", slug),
			zap.Int("rowCount", len(rows)),
		)
		return nil, commonerrors.ErrRepoNotFound
	}
}

// GetByIDForAuthor 实现作者本人的单篇回读（任意状态）。
func (r *blogPostRepository) GetByIDForAuthor(ctx context.Context, postID string, authorID string) (*entities.BlogPostWithAuthor, error) {
	var row entities.BlogPostWithAuthor

	err := r.withAuthorJoin(ctx).
		Where("blog_posts.id = ? AND blog_posts.author_id = ?", postID, authorID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按 ID 回读文章失败", zap.Error(err), zap.String("postID", postID))
		return nil, err
	}
	return &row, nil
}

// ListPublished 实现公开列表查询。
func (r *blogPostRepository) ListPublished(ctx context.Context, search string, category string) ([]*entities.BlogPostWithAuthor, error) {
	var rows []*entities.BlogPostWithAuthor

	query := r.withAuthorJoin(ctx).
		Where("blog_posts.status = ?", enums.PostStatusPublished)

	if search != "" {
		// 显式 LOWER 保证大小写不敏感，不依赖列的排序规则。
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(blog_posts.title) LIKE ? OR LOWER(blog_posts.content) LIKE ? OR LOWER(blog_posts.excerpt) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if category != "" && category != "all" {
		query = query.Where("blog_posts.category = ?", category)
	}

	// 最新发布在前；published_at 相同按插入顺序稳定排序。
	query = query.Order("blog_posts.published_at DESC").Order("blog_posts.created_at ASC")

	if err := query.Find(&rows).Error; err != nil {
		r.logger.Error("查询已发布文章列表失败",
			zap.Error(err),
			zap.String("search", search),
			zap.String("category", category),
		)
		return nil, err
	}
	return rows, nil
}

// ListByAuthor 实现作者后台的全量列表查询。
func (r *blogPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entities.BlogPostWithAuthor, error) {
	var rows []*entities.BlogPostWithAuthor

	err := r.withAuthorJoin(ctx).
		Where("blog_posts.author_id = ?", authorID).
		Order("blog_posts.created_at DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("查询作者文章列表失败", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}
	return rows, nil
}

// PublishDueScheduled 实现到期定时文章的批量发布。
func (r *blogPostRepository) PublishDueScheduled(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.BlogPost{}).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", enums.PostStatusScheduled, now).
		Updates(map[string]interface{}{
			"status":       enums.PostStatusPublished,
			"published_at": gorm.Expr("COALESCE(published_at, ?)", now),
			"updated_at":   now,
		})
	if result.Error != nil {
		r.logger.Error("批量发布到期定时文章失败", zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
