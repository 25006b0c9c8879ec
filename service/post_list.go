package service

import (
	"context"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// PostListService 定义了文章列表查询的业务逻辑接口。
// 读路径与写路径分开，便于后续给列表查询单独加缓存或分页策略。
type PostListService interface {
	// ListPublished 公开列表：已发布文章，最新发布在前。
	// - search 对标题/正文/摘要做大小写不敏感子串匹配。
	// - category 为空或为 "all" 时不过滤分类。
	// - 空结果返回空列表，不是错误。
	ListPublished(ctx context.Context, req *dto.ListPublishedPostsRequest) (*vo.PostListVO, error)

	// ListMine 作者后台列表：本人全部状态的文章，最近创建在前。
	// - authorID 为空返回 commonerrors.ErrUserNotLoggedIn。
	ListMine(ctx context.Context, authorID string) (*vo.PostListVO, error)
}

// postListService 是 PostListService 接口的具体实现。
type postListService struct {
	postRepo mysql.BlogPostRepository
	logger   *core.ZapLogger
}

// NewPostListService 是 postListService 的构造函数。
func NewPostListService(postRepo mysql.BlogPostRepository, logger *core.ZapLogger) PostListService {
	return &postListService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// ListPublished 实现公开列表查询。
func (s *postListService) ListPublished(ctx context.Context, req *dto.ListPublishedPostsRequest) (*vo.PostListVO, error) {
	category := req.Category
	if category == dto.CategoryAll {
		// 哨兵值等同于不过滤，归一化后仓库层无需理解它。
		category = ""
	}

	rows, err := s.postRepo.ListPublished(ctx, req.Search, category)
	if err != nil {
		s.logger.Error("查询公开文章列表失败",
			zap.Error(err),
			zap.String("search", req.Search),
			zap.String("category", req.Category),
		)
		return nil, err
	}

	posts := vo.NewBlogPostVOs(rows)
	return &vo.PostListVO{
		Posts: posts,
		Total: len(posts),
	}, nil
}

// ListMine 实现作者后台列表查询。
func (s *postListService) ListMine(ctx context.Context, authorID string) (*vo.PostListVO, error) {
	if authorID == "" {
		return nil, commonerrors.ErrUserNotLoggedIn
	}

	rows, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Error("查询作者文章列表失败", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}

	posts := vo.NewBlogPostVOs(rows)
	return &vo.PostListVO{
		Posts: posts,
		Total: len(posts),
	}, nil
}
