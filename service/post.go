package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/lifecycle"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/events"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/repo/redis"
	"github.com/Xushengqwer/blog_service/slugify"
)

// PostService 定义了文章写路径与单篇读取的业务逻辑接口。
type PostService interface {
	// CreatePost 处理作者创建文章的业务流程。
	// - 作者身份来自认证上下文；authorID 为空返回 commonerrors.ErrUserNotLoggedIn。
	// - 未提供 slug 时由标题派生；slug 唯一冲突返回 myErrors.ErrSlugConflict。
	// - 创建即发布（status=published）时落章发布时间，并异步发送 Kafka 发布事件。
	// - 返回回读后的完整 VO。
	CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*vo.BlogPostVO, error)

	// UpdatePost 对作者本人的文章执行局部更新。
	// - 补丁中为 nil 的字段保持原值不变。
	// - 状态进入 published 且补丁未显式携带 published_at 时由服务端落章。
	// - 未命中（文章不存在或不属于该作者）返回 commonerrors.ErrRepoNotFound。
	// - 成功后失效 slug 缓存；状态变为 published 时异步发送 Kafka 发布事件。
	UpdatePost(ctx context.Context, authorID string, postID string, req *dto.UpdatePostRequest) (*vo.BlogPostVO, error)

	// DeletePost 删除作者本人的文章。
	// - 删除是幂等的：文章不存在或不属于该作者时静默成功。
	// - 成功后失效 slug 缓存并异步发送 Kafka 删除事件。
	DeletePost(ctx context.Context, authorID string, postID string) error

	// GetPostBySlug 公开读取路径：按 slug 获取已发布文章。
	// - 旁路缓存：先查 Redis，未命中回源 MySQL 后回填。
	// - 草稿/定时文章与不存在的 slug 一律返回 commonerrors.ErrRepoNotFound。
	GetPostBySlug(ctx context.Context, slug string) (*vo.BlogPostVO, error)

	// UploadThumbnail 上传文章缩略图到对象存储，返回公开访问 URL。
	// - slugScope 用于组织对象键；为空时使用占位目录（文章尚未创建的场景）。
	UploadThumbnail(ctx context.Context, authorID string, slugScope string, fileHeader *multipart.FileHeader) (*vo.UploadThumbnailVO, error)
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	postRepo  mysql.BlogPostRepository        // 文章的 MySQL 操作
	postCache redis.PostCache                 // 按 slug 的 Redis 旁路缓存
	cosClient dependencies.COSClientInterface // 缩略图对象存储依赖
	kafkaSvc  *producer.KafkaProducer         // Kafka 生产者；为 nil 时跳过事件发送
	logger    *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
// - 这种方式便于单元测试和组件替换。
func NewPostService(postRepo mysql.BlogPostRepository, postCache redis.PostCache, cosClient dependencies.COSClientInterface, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) PostService {
	return &postService{
		postRepo:  postRepo,
		postCache: postCache,
		cosClient: cosClient,
		kafkaSvc:  kafkaSvc,
		logger:    logger,
	}
}

// buildPostEventData 把回读实体转换为 Kafka 事件数据。
func buildPostEventData(row *entities.BlogPostWithAuthor) events.PostEventData {
	data := events.PostEventData{
		ID:        row.ID,
		Title:     row.Title,
		Slug:      row.Slug,
		AuthorID:  row.AuthorID,
		Category:  row.Category,
		Tags:      row.Tags,
		UpdatedAt: row.UpdatedAt.UnixMilli(),
	}
	if row.Excerpt.Valid {
		data.Excerpt = row.Excerpt.String
	}
	if row.PublishedAt != nil {
		data.PublishedAt = row.PublishedAt.UnixMilli()
	}
	return data
}

// notifyPublished 异步发送文章发布事件。
func (s *postService) notifyPublished(row *entities.BlogPostWithAuthor) {
	if s.kafkaSvc == nil {
		return
	}
	go func(data events.PostEventData) {
		bgCtx := context.Background() // 事件发送不应阻塞请求主流程
		if kafkaErr := s.kafkaSvc.SendPostPublishedEvent(bgCtx, data); kafkaErr != nil {
			s.logger.Error("发送 Kafka 文章发布事件失败", zap.Error(kafkaErr), zap.String("post_id", data.ID))
		}
	}(buildPostEventData(row))
}

// notifyDeleted 异步发送文章删除事件。
func (s *postService) notifyDeleted(postID string, slug string) {
	if s.kafkaSvc == nil {
		return
	}
	go func(id, sl string) {
		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendPostDeletedEvent(bgCtx, id, sl); kafkaErr != nil {
			s.logger.Error("发送 Kafka 文章删除事件失败", zap.Error(kafkaErr), zap.String("post_id", id))
		}
	}(postID, slug)
}

// CreatePost 处理作者创建新文章的请求。
func (s *postService) CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*vo.BlogPostVO, error) {
	if authorID == "" {
		return nil, commonerrors.ErrUserNotLoggedIn
	}

	// 1. 确定 slug：显式提供的优先，否则由标题派生。
	var slug string
	if req.Slug != nil && *req.Slug != "" {
		slug = *req.Slug
	} else {
		slug = slugify.Derive(req.Title)
	}

	// 2. 组装实体并应用创建规则（标题/slug 校验、状态与分类缺省、发布落章）。
	post := &entities.BlogPost{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Slug:     slug,
		Content:  req.Content,
		AuthorID: authorID,
		Tags:     req.Tags,
	}
	if req.Excerpt != nil {
		post.Excerpt = sql.NullString{String: *req.Excerpt, Valid: true}
	}
	if req.ThumbnailURL != nil {
		post.ThumbnailURL = sql.NullString{String: *req.ThumbnailURL, Valid: true}
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	post.ScheduledAt = req.ScheduledAt

	if err := lifecycle.ApplyCreateDefaults(post, time.Now()); err != nil {
		s.logger.Warn("创建文章输入校验失败",
			zap.Error(err),
			zap.String("title", req.Title),
			zap.String("slug", slug),
		)
		return nil, err
	}

	// 3. 落库。slug 冲突由仓库层映射为 myErrors.ErrSlugConflict。
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	// 4. 回读附带作者展示名的完整行。
	row, err := s.postRepo.GetByIDForAuthor(ctx, post.ID, authorID)
	if err != nil {
		s.logger.Error("创建文章后回读失败", zap.Error(err), zap.String("post_id", post.ID))
		return nil, err
	}

	// 5. 创建即发布时异步通知下游。
	if row.Status == enums.PostStatusPublished {
		s.notifyPublished(row)
	}

	s.logger.Info("文章创建成功",
		zap.String("post_id", row.ID),
		zap.String("slug", row.Slug),
		zap.String("status", row.Status.String()),
	)
	return vo.NewBlogPostVO(row), nil
}

// UpdatePost 对作者本人的文章执行局部更新。
func (s *postService) UpdatePost(ctx context.Context, authorID string, postID string, req *dto.UpdatePostRequest) (*vo.BlogPostVO, error) {
	if authorID == "" {
		return nil, commonerrors.ErrUserNotLoggedIn
	}

	// 1. 把补丁 DTO 的非 nil 字段展开成 map，nil 字段不进入 map、保持原值。
	updates := make(map[string]interface{})
	if req.Title != nil {
		if err := lifecycle.ValidateTitle(*req.Title); err != nil {
			return nil, err
		}
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		// map 式 Updates 不经过字段序列化器，这里显式转成 JSON 落库。
		tagsJSON, marshalErr := json.Marshal(*req.Tags)
		if marshalErr != nil {
			return nil, fmt.Errorf("序列化标签失败: %w", marshalErr)
		}
		updates["tags"] = string(tagsJSON)
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, myErrors.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.ScheduledAt != nil {
		updates["scheduled_at"] = *req.ScheduledAt
	}
	if req.PublishedAt != nil {
		updates["published_at"] = *req.PublishedAt
	}

	// 2. 发布时间棘轮：状态进入 published 且未显式携带 published_at 时落章。
	lifecycle.StampPublishedAt(updates, req.Status, req.PublishedAt, time.Now())

	// 3. 行级过滤 id + author_id 的局部更新；空补丁是合法的 no-op。
	if err := s.postRepo.UpdatePost(ctx, postID, authorID, updates); err != nil {
		return nil, err
	}

	// 4. 回读更新后的完整行。
	row, err := s.postRepo.GetByIDForAuthor(ctx, postID, authorID)
	if err != nil {
		s.logger.Error("更新文章后回读失败", zap.Error(err), zap.String("post_id", postID))
		return nil, err
	}

	// 5. 失效 slug 缓存，公开读取路径下一次回源拿到新内容。
	if cacheErr := s.postCache.InvalidateBySlug(ctx, row.Slug); cacheErr != nil {
		// 缓存失效失败不影响更新结果，靠 TTL 兜底过期。
		s.logger.Warn("更新文章后失效缓存失败", zap.Error(cacheErr), zap.String("slug", row.Slug))
	}

	// 6. 本次补丁把文章推入 published 状态时异步通知下游。
	if req.Status != nil && *req.Status == enums.PostStatusPublished {
		s.notifyPublished(row)
	}

	return vo.NewBlogPostVO(row), nil
}

// DeletePost 实现文章的幂等删除。
func (s *postService) DeletePost(ctx context.Context, authorID string, postID string) error {
	if authorID == "" {
		return commonerrors.ErrUserNotLoggedIn
	}

	// 1. 先回读拿到 slug，用于缓存失效和删除事件。
	//    未找到视为已删除，直接静默成功（幂等删除语义）。
	row, err := s.postRepo.GetByIDForAuthor(ctx, postID, authorID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Info("删除文章：未找到记录，视为成功", zap.String("post_id", postID))
			return nil
		}
		s.logger.Error("删除文章：回读失败", zap.Error(err), zap.String("post_id", postID))
		return err
	}

	// 2. 执行删除。
	if err := s.postRepo.DeletePost(ctx, postID, authorID); err != nil {
		return err
	}

	// 3. 失效缓存并通知下游。
	if cacheErr := s.postCache.InvalidateBySlug(ctx, row.Slug); cacheErr != nil {
		s.logger.Warn("删除文章后失效缓存失败", zap.Error(cacheErr), zap.String("slug", row.Slug))
	}
	s.notifyDeleted(postID, row.Slug)

	s.logger.Info("文章删除成功", zap.String("post_id", postID), zap.String("slug", row.Slug))
	return nil
}

// GetPostBySlug 实现公开读取路径的旁路缓存查询。
func (s *postService) GetPostBySlug(ctx context.Context, slug string) (*vo.BlogPostVO, error) {
	// 1. 先查缓存。缓存层故障不阻断读取，直接回源。
	cached, cacheErr := s.postCache.GetBySlug(ctx, slug)
	if cacheErr == nil {
		return cached, nil
	}
	if !errors.Is(cacheErr, myErrors.ErrCacheMiss) {
		s.logger.Warn("读取文章缓存异常，回源数据库", zap.Error(cacheErr), zap.String("slug", slug))
	}

	// 2. 回源数据库。
	row, err := s.postRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	post := vo.NewBlogPostVO(row)

	// 3. 回填缓存；失败只记日志。
	if setErr := s.postCache.SetBySlug(ctx, post); setErr != nil {
		s.logger.Warn("回填文章缓存失败", zap.Error(setErr), zap.String("slug", slug))
	}
	return post, nil
}

// generateThumbnailObjectKey 创建缩略图的 COS 对象键。
// 规则: {前缀}{slug或占位符}/{毫秒时间戳}.{扩展名}
// slugScope 经过派生清洗，保证对象键路径安全。
func generateThumbnailObjectKey(slugScope string, originalFilename string, now time.Time) string {
	scope := slugify.Derive(slugScope)
	if scope == "" {
		scope = constant.COSThumbnailScopePlaceholder
	}
	extension := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s%s/%d%s",
		constant.COSObjectKeyPrefixThumbnails,
		scope,
		now.UnixMilli(),
		extension,
	)
}

// UploadThumbnail 实现缩略图上传。
func (s *postService) UploadThumbnail(ctx context.Context, authorID string, slugScope string, fileHeader *multipart.FileHeader) (*vo.UploadThumbnailVO, error) {
	if authorID == "" {
		return nil, commonerrors.ErrUserNotLoggedIn
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("打开缩略图文件失败",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		return nil, fmt.Errorf("打开缩略图文件 %s 失败: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
		s.logger.Warn("未提供缩略图的内容类型，使用默认值",
			zap.String("filename", fileHeader.Filename),
			zap.String("defaultContentType", contentType))
	}

	objectKey := generateThumbnailObjectKey(slugScope, fileHeader.Filename, time.Now())

	publicURL, err := s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		s.logger.Error("上传缩略图到 COS 失败",
			zap.String("filename", fileHeader.Filename),
			zap.String("objectKey", objectKey),
			zap.Error(err))
		return nil, fmt.Errorf("上传缩略图 %s 到 COS 失败: %w", fileHeader.Filename, err)
	}

	s.logger.Info("缩略图上传成功",
		zap.String("objectKey", objectKey),
		zap.String("url", publicURL))
	return &vo.UploadThumbnailVO{URL: publicURL}, nil
}
